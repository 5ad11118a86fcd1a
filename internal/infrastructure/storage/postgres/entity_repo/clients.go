package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/clients"
	"parkly/internal/domain/reports"
	"parkly/internal/infrastructure/storage/postgres"
)

const clientsTable = "clients"

var clientFields = []Field[*clients.Client]{
	{Column: "first_name", Value: func(c *clients.Client) any { return c.FirstName }},
	{Column: "last_name", Value: func(c *clients.Client) any { return c.LastName }},
	{Column: "email", Value: func(c *clients.Client) any { return c.Email }},
	{Column: "phone", Value: func(c *clients.Client) any { return c.Phone }},
	{Column: "birth_date", Value: func(c *clients.Client) any { return c.BirthDate }},
	{Column: "is_active", Value: func(c *clients.Client) any { return c.IsActive }},
	{Column: "created_at", Value: func(c *clients.Client) any { return c.CreatedAt }},
}

// ClientRepo implements clients.Repository.
type ClientRepo struct {
	*BaseRepo[*clients.Client]
}

var _ clients.Repository = (*ClientRepo)(nil)

// NewClientRepo creates a new client repository.
func NewClientRepo(db *postgres.DB) *ClientRepo {
	return &ClientRepo{
		BaseRepo: NewBaseRepo(db, clientsTable, clientFields,
			func() *clients.Client { return &clients.Client{} }),
	}
}

// GetActive retrieves active clients ordered by last name, first name.
func (r *ClientRepo) GetActive(ctx context.Context) ([]*clients.Client, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*clients.Client
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, clientsTable)
	}
	return items, nil
}

// GetByEmail retrieves a client by unique email.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*clients.Client, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var c clients.Client
	if err := pgxscan.Get(ctx, r.db.Querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(clientsTable, email)
		}
		return nil, postgres.WrapError(err, clientsTable)
	}
	return &c, nil
}

// Totals returns the user-report scalar aggregates. Total spend sums
// paid orders across the whole client base.
func (r *ClientRepo) Totals(ctx context.Context) (reports.ClientTotals, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE c.is_active) AS active,
			COUNT(*) FILTER (WHERE c.created_at >= date_trunc('month', now())) AS new_this_month,
			COALESCE((
				SELECT SUM(o.total_amount)
				FROM orders o
				WHERE o.status IN ('paid', 'completed')
			), 0) AS total_spend
		FROM clients c
	`

	var totals reports.ClientTotals
	if err := pgxscan.Get(ctx, r.db.Querier(ctx), &totals, query); err != nil {
		return reports.ClientTotals{}, postgres.WrapError(err, clientsTable)
	}
	return totals, nil
}

// TopBySpend returns the highest-spending clients, total spend descending.
func (r *ClientRepo) TopBySpend(ctx context.Context, limit int) ([]reports.ClientSpend, error) {
	query := `
		SELECT
			c.id AS client_id,
			c.first_name || ' ' || c.last_name AS name,
			c.email AS email,
			COUNT(o.id) AS orders,
			COALESCE(SUM(o.total_amount), 0) AS total_spend
		FROM clients c
		JOIN orders o ON o.client_id = c.id AND o.status IN ('paid', 'completed')
		GROUP BY c.id, c.first_name, c.last_name, c.email
		ORDER BY total_spend DESC, c.id ASC
		LIMIT $1
	`

	var spenders []reports.ClientSpend
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &spenders, query, limit); err != nil {
		return nil, postgres.WrapError(err, clientsTable)
	}
	return spenders, nil
}

// RegistrationsByDay returns per-day registration counts since the given
// date, date ascending. Days without registrations produce no row.
func (r *ClientRepo) RegistrationsByDay(ctx context.Context, since time.Time) ([]reports.DailyRegistrations, error) {
	query := `
		SELECT
			c.created_at::date AS date,
			COUNT(*) AS count
		FROM clients c
		WHERE c.created_at >= $1
		GROUP BY c.created_at::date
		ORDER BY date ASC
	`

	var days []reports.DailyRegistrations
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &days, query, since); err != nil {
		return nil, postgres.WrapError(err, clientsTable)
	}
	return days, nil
}
