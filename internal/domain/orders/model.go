// Package orders provides the Order document: a client's purchase of tickets.
package orders

import (
	"context"
	"time"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/core/types"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaidStatuses are the states that count towards sales reporting.
var PaidStatuses = []Status{StatusPaid, StatusCompleted}

// Order represents a client's purchase.
type Order struct {
	entity.Record

	ClientID    int64       `db:"client_id" json:"clientId"`
	Status      Status      `db:"status" json:"status"`
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

// NewOrder creates a pending order for a client.
func NewOrder(clientID int64, total types.Money) *Order {
	return &Order{
		ClientID:    clientID,
		Status:      StatusPending,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsPaid reports whether the order counts towards revenue.
func (o *Order) IsPaid() bool {
	return o.Status == StatusPaid || o.Status == StatusCompleted
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if o.ClientID <= 0 {
		return apperror.NewValidation("client is required").WithDetail("field", "clientId")
	}
	if !isValidStatus(o.Status) {
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}
	if o.TotalAmount.IsNegative() {
		return apperror.NewValidation("total amount cannot be negative").
			WithDetail("field", "totalAmount")
	}
	return nil
}

func isValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
