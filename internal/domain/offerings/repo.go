package offerings

import (
	"context"

	"parkly/internal/domain"
)

// Usage is one offering's popularity ranking entry.
type Usage struct {
	OfferingID int64  `db:"offering_id" json:"offeringId"`
	Name       string `db:"name" json:"name"`
	UsageCount int64  `db:"usage_count" json:"usageCount"`
}

// Repository defines the interface for Offering persistence.
type Repository interface {
	domain.Repository[*Offering]

	// GetActive retrieves active offerings ordered by name.
	GetActive(ctx context.Context) ([]*Offering, error)

	// IncrementUsage bumps the usage counter by one.
	// Returns false when the offering does not exist.
	IncrementUsage(ctx context.Context, id int64) (bool, error)

	// UsageStats returns offerings ranked by usage count descending.
	UsageStats(ctx context.Context) ([]Usage, error)
}
