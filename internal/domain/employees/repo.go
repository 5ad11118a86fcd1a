package employees

import (
	"context"

	"parkly/internal/domain"
)

// PositionCount is one position's headcount entry.
type PositionCount struct {
	Position Position `db:"position" json:"position"`
	Count    int64    `db:"count" json:"count"`
}

// Repository defines the interface for Employee persistence.
type Repository interface {
	domain.Repository[*Employee]

	// GetActive retrieves active employees ordered by last name, first name.
	GetActive(ctx context.Context) ([]*Employee, error)

	// GetByZone retrieves a zone's active employees ordered by last name.
	GetByZone(ctx context.Context, zoneID int64) ([]*Employee, error)

	// CountByPosition returns active headcount per position, count descending.
	CountByPosition(ctx context.Context) ([]PositionCount, error)
}
