package zones

import (
	"context"
	"time"

	"parkly/internal/domain"
)

// Popularity is one zone's visitor ranking entry.
type Popularity struct {
	ZoneID   int64  `db:"zone_id" json:"zoneId"`
	ZoneName string `db:"zone_name" json:"zoneName"`
	Visitors int64  `db:"visitors" json:"visitors"`
}

// Repository defines the interface for Zone persistence.
type Repository interface {
	domain.Repository[*Zone]

	// GetActive retrieves active zones ordered by name.
	GetActive(ctx context.Context) ([]*Zone, error)

	// Popularity returns visitor counts per zone from valid tickets, visitors
	// descending. A nil start/end leaves the range unbounded on that side.
	Popularity(ctx context.Context, start, end *time.Time) ([]Popularity, error)
}
