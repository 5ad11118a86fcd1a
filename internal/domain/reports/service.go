package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"parkly/internal/core/apperror"
	"parkly/internal/core/stats"
	"parkly/internal/core/types"
)

const (
	topSpendersLimit       = 10
	registrationWindowDays = 30
)

// OrderSales supplies order-level sales aggregates.
type OrderSales interface {
	SalesTotals(ctx context.Context, start, end time.Time) (SalesTotals, error)
	DailySales(ctx context.Context, start, end time.Time) ([]DailySales, error)
}

// TicketSales supplies per-attraction ticket aggregates.
type TicketSales interface {
	AttractionSales(ctx context.Context, start, end time.Time) ([]AttractionSales, error)
}

// PaymentSales supplies per-method payment aggregates.
type PaymentSales interface {
	MethodBreakdown(ctx context.Context, start, end *time.Time) ([]PaymentMethodSales, error)
}

// ClientData supplies client-base aggregates for the user report.
type ClientData interface {
	Totals(ctx context.Context) (ClientTotals, error)
	TopBySpend(ctx context.Context, limit int) ([]ClientSpend, error)
	RegistrationsByDay(ctx context.Context, since time.Time) ([]DailyRegistrations, error)
}

// AttendanceData supplies visit aggregates derived from valid tickets.
type AttendanceData interface {
	DistinctVisitors(ctx context.Context, start, end time.Time) (int64, error)
	AttendanceByDay(ctx context.Context, start, end time.Time) ([]DailyAttendance, error)
	AttendanceByHour(ctx context.Context, start, end time.Time) ([]HourlyAttendance, error)
	VisitorBirthDates(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

// Snapshot runs fn in a read-only transaction so every query inside fn
// observes the same committed data.
type Snapshot interface {
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the reporting engine. Each report method is a pure function of
// its arguments over a committed data snapshot; no state persists across calls.
type Service struct {
	orders     OrderSales
	tickets    TicketSales
	payments   PaymentSales
	clients    ClientData
	attendance AttendanceData
	snapshot   Snapshot

	now func() time.Time
}

// NewService creates a new reporting service. A nil snapshot runs each
// report's queries directly against the pool.
func NewService(
	orders OrderSales,
	tickets TicketSales,
	payments PaymentSales,
	clients ClientData,
	attendance AttendanceData,
	snapshot Snapshot,
) *Service {
	return &Service{
		orders:     orders,
		tickets:    tickets,
		payments:   payments,
		clients:    clients,
		attendance: attendance,
		snapshot:   snapshot,
		now:        time.Now,
	}
}

// snapshotted runs fn inside the snapshot when one is configured.
func (s *Service) snapshotted(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.snapshot == nil {
		return fn(ctx)
	}
	return s.snapshot.ReadOnly(ctx, fn)
}

// validateRange rejects invalid ranges before any query is issued.
func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return apperror.NewValidation("start and end dates are required")
	}
	if start.After(end) {
		return apperror.NewValidation("start date must not be after end date").
			WithDetail("startDate", start).
			WithDetail("endDate", end)
	}
	return nil
}

// GetSalesReport builds the sales report for the inclusive range [start, end].
func (s *Service) GetSalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	var report *SalesReport
	err := s.snapshotted(ctx, func(ctx context.Context) error {
		r, err := s.buildSalesReport(ctx, start, end)
		report = r
		return err
	})
	return report, err
}

func (s *Service) buildSalesReport(ctx context.Context, start, end time.Time) (*SalesReport, error) {
	totals, err := s.orders.SalesTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales totals: %w", err)
	}

	daily, err := s.orders.DailySales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}

	byAttraction, err := s.tickets.AttractionSales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("attraction sales: %w", err)
	}
	// Revenue descending, regardless of how the rows arrived.
	stats.RankByDesc(byAttraction, func(e AttractionSales) float64 {
		f, _ := e.Revenue.Float64()
		return f
	})
	stats.FillAmountPercent(byAttraction, totals.Revenue,
		func(e AttractionSales) decimal.Decimal { return e.Revenue },
		func(e *AttractionSales, p float64) { e.Percentage = p })

	byMethod, err := s.payments.MethodBreakdown(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("payment method breakdown: %w", err)
	}
	stats.RankByDesc(byMethod, func(e PaymentMethodSales) float64 {
		f, _ := e.Amount.Float64()
		return f
	})
	methodTotal := stats.SumAmounts(byMethod,
		func(e PaymentMethodSales) decimal.Decimal { return e.Amount })
	stats.FillAmountPercent(byMethod, methodTotal,
		func(e PaymentMethodSales) decimal.Decimal { return e.Amount },
		func(e *PaymentMethodSales, p float64) { e.Percentage = p })

	avg := types.Zero()
	if totals.Orders > 0 {
		avg = totals.Revenue.Div(decimal.NewFromInt(totals.Orders))
	}

	return &SalesReport{
		StartDate:         start,
		EndDate:           end,
		TotalOrders:       totals.Orders,
		TotalTickets:      totals.Tickets,
		TotalRevenue:      totals.Revenue,
		AverageOrderValue: avg,
		Daily:             daily,
		ByAttraction:      byAttraction,
		ByPaymentMethod:   byMethod,
	}, nil
}

// GetUserReport builds the user report as of report time.
func (s *Service) GetUserReport(ctx context.Context) (*UserReport, error) {
	var report *UserReport
	err := s.snapshotted(ctx, func(ctx context.Context) error {
		r, err := s.buildUserReport(ctx)
		report = r
		return err
	})
	return report, err
}

func (s *Service) buildUserReport(ctx context.Context) (*UserReport, error) {
	totals, err := s.clients.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("client totals: %w", err)
	}

	top, err := s.clients.TopBySpend(ctx, topSpendersLimit)
	if err != nil {
		return nil, fmt.Errorf("top spenders: %w", err)
	}

	since := s.now().UTC().AddDate(0, 0, -registrationWindowDays).Truncate(24 * time.Hour)
	regs, err := s.clients.RegistrationsByDay(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("registrations by day: %w", err)
	}

	// Average spend is per client, not per order: paid revenue over the
	// whole client base.
	avgSpend := types.Zero()
	if totals.Total > 0 {
		avgSpend = totals.TotalSpend.Div(decimal.NewFromInt(totals.Total))
	}

	return &UserReport{
		TotalClients:  totals.Total,
		ActiveClients: totals.Active,
		NewThisMonth:  totals.NewThisMonth,
		AverageSpend:  avgSpend,
		TopSpenders:   top,
		Registrations: regs,
	}, nil
}

// GetAttendanceReport builds the attendance report for [start, end].
func (s *Service) GetAttendanceReport(ctx context.Context, start, end time.Time) (*AttendanceReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	var report *AttendanceReport
	err := s.snapshotted(ctx, func(ctx context.Context) error {
		r, err := s.buildAttendanceReport(ctx, start, end)
		report = r
		return err
	})
	return report, err
}

func (s *Service) buildAttendanceReport(ctx context.Context, start, end time.Time) (*AttendanceReport, error) {
	total, err := s.attendance.DistinctVisitors(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("distinct visitors: %w", err)
	}

	daily, err := s.attendance.AttendanceByDay(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("attendance by day: %w", err)
	}

	var peakDate time.Time
	var peakVisitors int64
	for _, d := range daily {
		if d.Visitors > peakVisitors {
			peakVisitors = d.Visitors
			peakDate = d.Date
		}
	}

	hourly, err := s.attendance.AttendanceByHour(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("attendance by hour: %w", err)
	}
	hourly = fillHours(hourly)
	stats.FillCountPercent(hourly, total,
		func(e HourlyAttendance) int64 { return e.Visitors },
		func(e *HourlyAttendance, p float64) { e.Percentage = p })

	dobs, err := s.attendance.VisitorBirthDates(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("visitor birth dates: %w", err)
	}
	ageGroups := s.bandVisitors(dobs)

	return &AttendanceReport{
		StartDate:     start,
		EndDate:       end,
		TotalVisitors: total,
		PeakDate:      peakDate,
		PeakVisitors:  peakVisitors,
		Daily:         daily,
		Hourly:        hourly,
		AgeGroups:     ageGroups,
	}, nil
}

// fillHours expands sparse hour rows into the full 0-23 sequence.
func fillHours(rows []HourlyAttendance) []HourlyAttendance {
	full := make([]HourlyAttendance, 24)
	for h := range full {
		full[h].Hour = h
	}
	for _, r := range rows {
		if r.Hour >= 0 && r.Hour < 24 {
			full[r.Hour].Visitors = r.Visitors
		}
	}
	return full
}

// bandVisitors buckets visitors into the four fixed age bands by age at report time.
func (s *Service) bandVisitors(dobs []time.Time) []AgeGroupAttendance {
	at := s.now()
	counts := make(map[string]int64, len(AgeBands))
	for _, dob := range dobs {
		counts[AgeBand(dob, at)]++
	}

	groups := make([]AgeGroupAttendance, 0, len(AgeBands))
	for _, band := range AgeBands {
		groups = append(groups, AgeGroupAttendance{Group: band, Visitors: counts[band]})
	}
	base := stats.SumCounts(groups,
		func(e AgeGroupAttendance) int64 { return e.Visitors })
	stats.FillCountPercent(groups, base,
		func(e AgeGroupAttendance) int64 { return e.Visitors },
		func(e *AgeGroupAttendance, p float64) { e.Percentage = p })
	return groups
}
