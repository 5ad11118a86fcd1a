package orders

import (
	"context"
	"fmt"
	"time"

	"parkly/internal/core/apperror"
	"parkly/internal/core/types"
	"parkly/internal/domain/tickets"
	"parkly/pkg/logger"
)

// TxRunner executes a function inside a single database transaction.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderWriter persists orders.
type OrderWriter interface {
	Create(ctx context.Context, o *Order) error
}

// TicketWriter persists tickets.
type TicketWriter interface {
	Create(ctx context.Context, t *tickets.Ticket) error
}

// TicketLine is one requested ticket of an order being placed.
type TicketLine struct {
	AttractionID int64       `json:"attractionId" binding:"required"`
	Price        types.Money `json:"price"`
	VisitAt      time.Time   `json:"visitAt" binding:"required"`
}

// Service places orders together with their tickets.
type Service struct {
	tx      TxRunner
	orders  OrderWriter
	tickets TicketWriter
}

// NewService creates a new order service.
func NewService(tx TxRunner, orders OrderWriter, tickets TicketWriter) *Service {
	return &Service{
		tx:      tx,
		orders:  orders,
		tickets: tickets,
	}
}

// Place creates a pending order and its tickets in one transaction.
// The order total is the sum of the line prices. On any failure nothing
// is persisted.
func (s *Service) Place(ctx context.Context, clientID int64, lines []TicketLine) (*Order, []*tickets.Ticket, error) {
	if len(lines) == 0 {
		return nil, nil, apperror.NewValidation("at least one ticket is required").
			WithDetail("field", "tickets")
	}

	total := types.Zero()
	for _, l := range lines {
		total = total.Add(l.Price)
	}

	order := NewOrder(clientID, total)
	if err := order.Validate(ctx); err != nil {
		return nil, nil, err
	}

	created := make([]*tickets.Ticket, 0, len(lines))
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, l := range lines {
			t := tickets.NewTicket(order.GetID(), clientID, l.AttractionID, l.Price, l.VisitAt)
			if err := t.Validate(ctx); err != nil {
				return err
			}
			if err := s.tickets.Create(ctx, t); err != nil {
				return fmt.Errorf("create ticket: %w", err)
			}
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "order placed",
		"id", order.GetID(),
		"client_id", clientID,
		"tickets", len(created))

	return order, created, nil
}
