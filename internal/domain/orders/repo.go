package orders

import (
	"context"
	"time"

	"parkly/internal/domain"
	"parkly/internal/domain/reports"
)

// Repository defines the interface for Order persistence.
type Repository interface {
	domain.Repository[*Order]

	// GetByClient retrieves a client's orders, newest first.
	GetByClient(ctx context.Context, clientID int64) ([]*Order, error)

	// UpdateStatus moves an order to the given status.
	// Returns false when the order does not exist.
	UpdateStatus(ctx context.Context, id int64, status Status) (bool, error)

	// SalesTotals returns scalar sales aggregates over paid orders in [start, end].
	SalesTotals(ctx context.Context, start, end time.Time) (reports.SalesTotals, error)

	// DailySales returns per-day sales over paid orders in [start, end], date ascending.
	DailySales(ctx context.Context, start, end time.Time) ([]reports.DailySales, error)
}
