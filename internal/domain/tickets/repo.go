package tickets

import (
	"context"
	"time"

	"parkly/internal/domain"
	"parkly/internal/domain/reports"
)

// Repository defines the interface for Ticket persistence.
type Repository interface {
	domain.Repository[*Ticket]

	// GetByOrder retrieves an order's tickets, id ascending.
	GetByOrder(ctx context.Context, orderID int64) ([]*Ticket, error)

	// GetByCode retrieves a ticket by its barcode code.
	GetByCode(ctx context.Context, code string) (*Ticket, error)

	// ExpiringBefore retrieves reserved/confirmed tickets that expire before t,
	// soonest first.
	ExpiringBefore(ctx context.Context, t time.Time) ([]*Ticket, error)

	// MarkUsed transitions a confirmed ticket to used.
	// Returns false when the ticket does not exist or is not confirmed.
	MarkUsed(ctx context.Context, id int64) (bool, error)

	// AttractionSales returns per-attraction ticket sales over paid orders
	// in [start, end], revenue descending.
	AttractionSales(ctx context.Context, start, end time.Time) ([]reports.AttractionSales, error)

	// DistinctVisitors counts distinct clients holding valid tickets in [start, end].
	DistinctVisitors(ctx context.Context, start, end time.Time) (int64, error)

	// AttendanceByDay returns per-day distinct visitor counts, date ascending.
	AttendanceByDay(ctx context.Context, start, end time.Time) ([]reports.DailyAttendance, error)

	// AttendanceByHour returns distinct visitor counts grouped by hour of visit,
	// hour ascending. Hours without visits are omitted; the engine zero-fills.
	AttendanceByHour(ctx context.Context, start, end time.Time) ([]reports.HourlyAttendance, error)

	// VisitorBirthDates returns the birth dates of distinct visitors in [start, end].
	VisitorBirthDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}
