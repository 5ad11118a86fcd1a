// Package employees provides the Employee catalog: venue staff.
package employees

import (
	"context"
	"time"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
)

// Position is the staff role.
type Position string

const (
	PositionCashier    Position = "cashier"
	PositionOperator   Position = "operator"
	PositionManager    Position = "manager"
	PositionTechnician Position = "technician"
)

// Employee represents a staff member, optionally assigned to a zone.
type Employee struct {
	entity.Record

	FirstName string   `db:"first_name" json:"firstName"`
	LastName  string   `db:"last_name" json:"lastName"`
	Position  Position `db:"position" json:"position"`

	// ZoneID is nil for staff not bound to a zone (e.g. managers)
	ZoneID *int64 `db:"zone_id" json:"zoneId,omitempty"`

	HiredAt  time.Time `db:"hired_at" json:"hiredAt"`
	IsActive bool      `db:"is_active" json:"isActive"`
}

// NewEmployee creates an active employee.
func NewEmployee(firstName, lastName string, position Position) *Employee {
	return &Employee{
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		HiredAt:   time.Now().UTC(),
		IsActive:  true,
	}
}

// Validate implements entity.Validatable.
func (e *Employee) Validate(ctx context.Context) error {
	if e.FirstName == "" {
		return apperror.NewValidation("first name is required").WithDetail("field", "firstName")
	}
	if e.LastName == "" {
		return apperror.NewValidation("last name is required").WithDetail("field", "lastName")
	}
	if !isValidPosition(e.Position) {
		return apperror.NewValidation("invalid position").
			WithDetail("field", "position").
			WithDetail("value", string(e.Position))
	}
	return nil
}

func isValidPosition(p Position) bool {
	switch p {
	case PositionCashier, PositionOperator, PositionManager, PositionTechnician:
		return true
	}
	return false
}
