package clients

import (
	"context"
	"time"

	"parkly/internal/domain"
	"parkly/internal/domain/reports"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	domain.Repository[*Client]

	// GetActive retrieves active clients ordered by last name, first name.
	GetActive(ctx context.Context) ([]*Client, error)

	// GetByEmail retrieves a client by unique email.
	GetByEmail(ctx context.Context, email string) (*Client, error)

	// Totals returns the user-report scalar aggregates.
	Totals(ctx context.Context) (reports.ClientTotals, error)

	// TopBySpend returns the highest-spending clients, total spend descending.
	TopBySpend(ctx context.Context, limit int) ([]reports.ClientSpend, error)

	// RegistrationsByDay returns per-day registration counts since the given
	// date, date ascending. Days without registrations are omitted.
	RegistrationsByDay(ctx context.Context, since time.Time) ([]reports.DailyRegistrations, error)
}
