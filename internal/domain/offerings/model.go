// Package offerings provides the Offering catalog: venue services such as
// lockers, parking, or equipment rental.
package offerings

import (
	"context"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/core/types"
)

// Offering represents a paid venue service.
type Offering struct {
	entity.Record

	Name  string      `db:"name" json:"name"`
	Price types.Money `db:"price" json:"price"`

	// UsageCount tracks how many times the service was used
	UsageCount int64 `db:"usage_count" json:"usageCount"`

	IsActive bool `db:"is_active" json:"isActive"`
}

// NewOffering creates an active offering.
func NewOffering(name string, price types.Money) *Offering {
	return &Offering{
		Name:     name,
		Price:    price,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (o *Offering) Validate(ctx context.Context) error {
	if o.Name == "" {
		return apperror.NewValidation("offering name is required").WithDetail("field", "name")
	}
	if o.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").WithDetail("field", "price")
	}
	if o.UsageCount < 0 {
		return apperror.NewValidation("usage count cannot be negative").WithDetail("field", "usageCount")
	}
	return nil
}
