// Package zones provides the Zone catalog: physical areas of the venue.
package zones

import (
	"context"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
)

// Zone represents a physical area grouping attractions and staff.
type Zone struct {
	entity.Record

	Name        string  `db:"name" json:"name"`
	Capacity    int     `db:"capacity" json:"capacity"`
	IsActive    bool    `db:"is_active" json:"isActive"`
	Description *string `db:"description" json:"description,omitempty"`
}

// NewZone creates an active zone.
func NewZone(name string, capacity int) *Zone {
	return &Zone{
		Name:     name,
		Capacity: capacity,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (z *Zone) Validate(ctx context.Context) error {
	if z.Name == "" {
		return apperror.NewValidation("zone name is required").WithDetail("field", "name")
	}
	if z.Capacity < 0 {
		return apperror.NewValidation("capacity cannot be negative").WithDetail("field", "capacity")
	}
	return nil
}
