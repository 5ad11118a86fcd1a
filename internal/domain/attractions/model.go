// Package attractions provides the Attraction catalog: rides and experiences
// clients buy tickets for.
package attractions

import (
	"context"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/core/types"
)

// Attraction represents a ride or experience within a zone.
type Attraction struct {
	entity.Record

	Name   string `db:"name" json:"name"`
	ZoneID int64  `db:"zone_id" json:"zoneId"`

	// Price is the base ticket price
	Price types.Money `db:"price" json:"price"`

	// MinAge is the minimum visitor age; zero means no restriction
	MinAge int `db:"min_age" json:"minAge"`

	IsActive    bool    `db:"is_active" json:"isActive"`
	Description *string `db:"description" json:"description,omitempty"`
}

// NewAttraction creates an active attraction.
func NewAttraction(name string, zoneID int64, price types.Money) *Attraction {
	return &Attraction{
		Name:     name,
		ZoneID:   zoneID,
		Price:    price,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (a *Attraction) Validate(ctx context.Context) error {
	if a.Name == "" {
		return apperror.NewValidation("attraction name is required").WithDetail("field", "name")
	}
	if a.ZoneID <= 0 {
		return apperror.NewValidation("zone is required").WithDetail("field", "zoneId")
	}
	if a.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").WithDetail("field", "price")
	}
	if a.MinAge < 0 {
		return apperror.NewValidation("minimum age cannot be negative").WithDetail("field", "minAge")
	}
	return nil
}
