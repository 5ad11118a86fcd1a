package payments

import (
	"context"
	"time"

	"parkly/internal/domain"
	"parkly/internal/domain/reports"
)

// Repository defines the interface for Payment persistence.
type Repository interface {
	domain.Repository[*Payment]

	// GetByOrder retrieves an order's payments, id ascending.
	GetByOrder(ctx context.Context, orderID int64) ([]*Payment, error)

	// MethodBreakdown returns completed payments grouped by method, total
	// amount descending. A nil start/end leaves the range unbounded on
	// that side.
	MethodBreakdown(ctx context.Context, start, end *time.Time) ([]reports.PaymentMethodSales, error)
}
