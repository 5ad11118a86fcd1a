// Package payments provides the Payment document: money collected for an order.
package payments

import (
	"context"
	"time"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/core/types"
)

// Method is the payment instrument.
type Method string

const (
	MethodCard   Method = "card"
	MethodCash   Method = "cash"
	MethodOnline Method = "online"
)

// Status is the payment lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// Payment represents money collected against an order.
type Payment struct {
	entity.Record

	OrderID int64       `db:"order_id" json:"orderId"`
	Method  Method      `db:"method" json:"method"`
	Amount  types.Money `db:"amount" json:"amount"`
	Status  Status      `db:"status" json:"status"`
	PaidAt  *time.Time  `db:"paid_at" json:"paidAt,omitempty"`
}

// NewPayment creates a pending payment for an order.
func NewPayment(orderID int64, method Method, amount types.Money) *Payment {
	return &Payment{
		OrderID: orderID,
		Method:  method,
		Amount:  amount,
		Status:  StatusPending,
	}
}

// Validate implements entity.Validatable.
func (p *Payment) Validate(ctx context.Context) error {
	if p.OrderID <= 0 {
		return apperror.NewValidation("order is required").WithDetail("field", "orderId")
	}
	if !isValidMethod(p.Method) {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "method").
			WithDetail("value", string(p.Method))
	}
	if p.Amount.IsNegative() {
		return apperror.NewValidation("amount cannot be negative").WithDetail("field", "amount")
	}
	return nil
}

func isValidMethod(m Method) bool {
	switch m {
	case MethodCard, MethodCash, MethodOnline:
		return true
	}
	return false
}
