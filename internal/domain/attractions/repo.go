package attractions

import (
	"context"
	"time"

	"parkly/internal/domain"
)

// Popularity is one attraction's visit ranking entry.
type Popularity struct {
	AttractionID   int64  `db:"attraction_id" json:"attractionId"`
	AttractionName string `db:"attraction_name" json:"attractionName"`
	Visits         int64  `db:"visits" json:"visits"`
}

// Repository defines the interface for Attraction persistence.
type Repository interface {
	domain.Repository[*Attraction]

	// GetActive retrieves active attractions ordered by name.
	GetActive(ctx context.Context) ([]*Attraction, error)

	// GetByZone retrieves a zone's attractions ordered by name.
	GetByZone(ctx context.Context, zoneID int64) ([]*Attraction, error)

	// Popularity returns visit counts per attraction from valid tickets,
	// visits descending. A nil start/end leaves the range unbounded on
	// that side.
	Popularity(ctx context.Context, start, end *time.Time) ([]Popularity, error)
}
