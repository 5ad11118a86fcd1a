package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/payments"
	"parkly/internal/domain/reports"
	"parkly/internal/infrastructure/storage/postgres"
)

const paymentsTable = "payments"

var paymentFields = []Field[*payments.Payment]{
	{Column: "order_id", Value: func(p *payments.Payment) any { return p.OrderID }},
	{Column: "method", Value: func(p *payments.Payment) any { return p.Method }},
	{Column: "amount", Value: func(p *payments.Payment) any { return p.Amount }},
	{Column: "status", Value: func(p *payments.Payment) any { return p.Status }},
	{Column: "paid_at", Value: func(p *payments.Payment) any { return p.PaidAt }},
}

// PaymentRepo implements payments.Repository.
type PaymentRepo struct {
	*BaseRepo[*payments.Payment]
}

var _ payments.Repository = (*PaymentRepo)(nil)

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(db *postgres.DB) *PaymentRepo {
	return &PaymentRepo{
		BaseRepo: NewBaseRepo(db, paymentsTable, paymentFields,
			func() *payments.Payment { return &payments.Payment{} }),
	}
}

// GetByOrder retrieves an order's payments, id ascending.
func (r *PaymentRepo) GetByOrder(ctx context.Context, orderID int64) ([]*payments.Payment, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*payments.Payment
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, paymentsTable)
	}
	return items, nil
}

// MethodBreakdown returns completed payments grouped by method, total amount
// descending. A nil start/end leaves the range unbounded on that side.
func (r *PaymentRepo) MethodBreakdown(ctx context.Context, start, end *time.Time) ([]reports.PaymentMethodSales, error) {
	q := r.Builder().
		Select(
			"p.method AS method",
			"COUNT(*) AS payments",
			"COALESCE(SUM(p.amount), 0) AS amount",
		).
		From(paymentsTable + " p").
		Where(squirrel.Eq{"p.status": payments.StatusCompleted}).
		GroupBy("p.method").
		OrderBy("amount DESC", "method ASC")
	q = applyRange(q, "p.paid_at", start, end)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var methods []reports.PaymentMethodSales
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &methods, sql, args...); err != nil {
		return nil, postgres.WrapError(err, paymentsTable)
	}
	return methods, nil
}
