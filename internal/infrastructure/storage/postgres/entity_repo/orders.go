package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/orders"
	"parkly/internal/domain/reports"
	"parkly/internal/infrastructure/storage/postgres"
)

const ordersTable = "orders"

var orderFields = []Field[*orders.Order]{
	{Column: "client_id", Value: func(o *orders.Order) any { return o.ClientID }},
	{Column: "status", Value: func(o *orders.Order) any { return o.Status }},
	{Column: "total_amount", Value: func(o *orders.Order) any { return o.TotalAmount }},
	{Column: "created_at", Value: func(o *orders.Order) any { return o.CreatedAt }},
}

// OrderRepo implements orders.Repository.
type OrderRepo struct {
	*BaseRepo[*orders.Order]
}

var _ orders.Repository = (*OrderRepo)(nil)

// NewOrderRepo creates a new order repository.
func NewOrderRepo(db *postgres.DB) *OrderRepo {
	return &OrderRepo{
		BaseRepo: NewBaseRepo(db, ordersTable, orderFields,
			func() *orders.Order { return &orders.Order{} }),
	}
}

// GetByClient retrieves a client's orders, newest first.
func (r *OrderRepo) GetByClient(ctx context.Context, clientID int64) ([]*orders.Order, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*orders.Order
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, ordersTable)
	}
	return items, nil
}

// UpdateStatus moves an order to the given status.
// Returns false when the order does not exist.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status orders.Status) (bool, error) {
	sql, args, err := r.Builder().
		Update(ordersTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, apperror.NewInternal(err)
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.WrapError(err, ordersTable)
	}
	return tag.RowsAffected() == 1, nil
}

// SalesTotals returns scalar sales aggregates over paid orders in [start, end].
func (r *OrderRepo) SalesTotals(ctx context.Context, start, end time.Time) (reports.SalesTotals, error) {
	// Aggregate per order first so the ticket join cannot multiply revenue.
	query := `
		SELECT
			COUNT(*) AS orders,
			COALESCE(SUM(per_order.tickets), 0) AS tickets,
			COALESCE(SUM(per_order.total_amount), 0) AS revenue
		FROM (
			SELECT
				o.id,
				o.total_amount,
				COUNT(t.id) AS tickets
			FROM orders o
			LEFT JOIN tickets t ON t.order_id = o.id
			WHERE o.status IN ('paid', 'completed')
			  AND o.created_at >= $1
			  AND o.created_at <= $2
			GROUP BY o.id, o.total_amount
		) AS per_order
	`

	var totals reports.SalesTotals
	if err := pgxscan.Get(ctx, r.db.Querier(ctx), &totals, query, start, end); err != nil {
		return reports.SalesTotals{}, postgres.WrapError(err, ordersTable)
	}
	return totals, nil
}

// DailySales returns per-day sales over paid orders in [start, end], date ascending.
func (r *OrderRepo) DailySales(ctx context.Context, start, end time.Time) ([]reports.DailySales, error) {
	query := `
		SELECT
			per_order.day AS date,
			COUNT(*) AS orders,
			COALESCE(SUM(per_order.tickets), 0) AS tickets,
			COALESCE(SUM(per_order.total_amount), 0) AS revenue
		FROM (
			SELECT
				o.id,
				o.created_at::date AS day,
				o.total_amount,
				COUNT(t.id) AS tickets
			FROM orders o
			LEFT JOIN tickets t ON t.order_id = o.id
			WHERE o.status IN ('paid', 'completed')
			  AND o.created_at >= $1
			  AND o.created_at <= $2
			GROUP BY o.id, o.created_at::date, o.total_amount
		) AS per_order
		GROUP BY per_order.day
		ORDER BY date ASC
	`

	var days []reports.DailySales
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &days, query, start, end); err != nil {
		return nil, postgres.WrapError(err, ordersTable)
	}
	return days, nil
}
