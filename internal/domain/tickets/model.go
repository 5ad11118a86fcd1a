// Package tickets provides the Ticket document: one attraction visit per ticket.
package tickets

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/core/types"
)

// Status is the ticket lifecycle state.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusConfirmed Status = "confirmed"
	StatusUsed      Status = "used"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses are the states that count towards attendance reporting.
var ValidStatuses = []Status{StatusConfirmed, StatusUsed}

// Ticket grants one client entry to one attraction.
type Ticket struct {
	entity.Record

	OrderID      int64 `db:"order_id" json:"orderId"`
	ClientID     int64 `db:"client_id" json:"clientId"`
	AttractionID int64 `db:"attraction_id" json:"attractionId"`

	// Code is the printed barcode value, assigned at construction
	Code string `db:"code" json:"code"`

	Price  types.Money `db:"price" json:"price"`
	Status Status      `db:"status" json:"status"`

	// VisitAt is the scheduled visit timestamp; attendance groups by its date and hour
	VisitAt   time.Time `db:"visit_at" json:"visitAt"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
}

// NewTicket creates a reserved ticket with a generated barcode code.
func NewTicket(orderID, clientID, attractionID int64, price types.Money, visitAt time.Time) *Ticket {
	return &Ticket{
		OrderID:      orderID,
		ClientID:     clientID,
		AttractionID: attractionID,
		Code:         uuid.NewString(),
		Price:        price,
		Status:       StatusReserved,
		VisitAt:      visitAt,
		ExpiresAt:    visitAt.AddDate(0, 0, 1),
	}
}

// IsValid reports whether the ticket counts towards attendance.
func (t *Ticket) IsValid() bool {
	return t.Status == StatusConfirmed || t.Status == StatusUsed
}

// Validate implements entity.Validatable.
func (t *Ticket) Validate(ctx context.Context) error {
	if t.OrderID <= 0 {
		return apperror.NewValidation("order is required").WithDetail("field", "orderId")
	}
	if t.ClientID <= 0 {
		return apperror.NewValidation("client is required").WithDetail("field", "clientId")
	}
	if t.AttractionID <= 0 {
		return apperror.NewValidation("attraction is required").WithDetail("field", "attractionId")
	}
	if t.Code == "" {
		return apperror.NewValidation("ticket code is required").WithDetail("field", "code")
	}
	if t.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").WithDetail("field", "price")
	}
	if !isValidStatus(t.Status) {
		return apperror.NewValidation("invalid ticket status").
			WithDetail("field", "status").
			WithDetail("value", string(t.Status))
	}
	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusUsed, StatusCancelled:
		return true
	}
	return false
}
