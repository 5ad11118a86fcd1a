package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/reports"
	"parkly/internal/domain/tickets"
	"parkly/internal/infrastructure/storage/postgres"
)

const ticketsTable = "tickets"

var ticketFields = []Field[*tickets.Ticket]{
	{Column: "order_id", Value: func(t *tickets.Ticket) any { return t.OrderID }},
	{Column: "client_id", Value: func(t *tickets.Ticket) any { return t.ClientID }},
	{Column: "attraction_id", Value: func(t *tickets.Ticket) any { return t.AttractionID }},
	{Column: "code", Value: func(t *tickets.Ticket) any { return t.Code }},
	{Column: "price", Value: func(t *tickets.Ticket) any { return t.Price }},
	{Column: "status", Value: func(t *tickets.Ticket) any { return t.Status }},
	{Column: "visit_at", Value: func(t *tickets.Ticket) any { return t.VisitAt }},
	{Column: "expires_at", Value: func(t *tickets.Ticket) any { return t.ExpiresAt }},
}

// TicketRepo implements tickets.Repository.
type TicketRepo struct {
	*BaseRepo[*tickets.Ticket]
}

var _ tickets.Repository = (*TicketRepo)(nil)

// NewTicketRepo creates a new ticket repository.
func NewTicketRepo(db *postgres.DB) *TicketRepo {
	return &TicketRepo{
		BaseRepo: NewBaseRepo(db, ticketsTable, ticketFields,
			func() *tickets.Ticket { return &tickets.Ticket{} }),
	}
}

// GetByOrder retrieves an order's tickets, id ascending.
func (r *TicketRepo) GetByOrder(ctx context.Context, orderID int64) ([]*tickets.Ticket, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*tickets.Ticket
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return items, nil
}

// GetByCode retrieves a ticket by its barcode code.
func (r *TicketRepo) GetByCode(ctx context.Context, code string) (*tickets.Ticket, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var t tickets.Ticket
	if err := pgxscan.Get(ctx, r.db.Querier(ctx), &t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(ticketsTable, code)
		}
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return &t, nil
}

// ExpiringBefore retrieves reserved and confirmed tickets expiring before t,
// soonest first.
func (r *TicketRepo) ExpiringBefore(ctx context.Context, t time.Time) ([]*tickets.Ticket, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Lt{"expires_at": t}).
		Where(squirrel.Eq{"status": []tickets.Status{tickets.StatusReserved, tickets.StatusConfirmed}}).
		OrderBy("expires_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*tickets.Ticket
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return items, nil
}

// MarkUsed transitions a confirmed ticket to used.
// Returns false when the ticket does not exist or is not confirmed.
func (r *TicketRepo) MarkUsed(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.Builder().
		Update(ticketsTable).
		Set("status", tickets.StatusUsed).
		Where(squirrel.Eq{"id": id, "status": tickets.StatusConfirmed}).
		ToSql()
	if err != nil {
		return false, apperror.NewInternal(err)
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.WrapError(err, ticketsTable)
	}
	return tag.RowsAffected() == 1, nil
}

// AttractionSales returns per-attraction ticket sales over paid orders
// in [start, end], revenue descending.
func (r *TicketRepo) AttractionSales(ctx context.Context, start, end time.Time) ([]reports.AttractionSales, error) {
	query := `
		SELECT
			a.id AS attraction_id,
			a.name AS attraction_name,
			COUNT(t.id) AS tickets,
			COALESCE(SUM(t.price), 0) AS revenue
		FROM tickets t
		JOIN orders o ON o.id = t.order_id
		JOIN attractions a ON a.id = t.attraction_id
		WHERE o.status IN ('paid', 'completed')
		  AND o.created_at >= $1
		  AND o.created_at <= $2
		GROUP BY a.id, a.name
		ORDER BY revenue DESC, a.id ASC
	`

	var sales []reports.AttractionSales
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &sales, query, start, end); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return sales, nil
}

// DistinctVisitors counts distinct clients holding valid tickets in [start, end].
func (r *TicketRepo) DistinctVisitors(ctx context.Context, start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT t.client_id)
		FROM tickets t
		WHERE t.status IN ('confirmed', 'used')
		  AND t.visit_at >= $1
		  AND t.visit_at <= $2
	`

	var visitors int64
	if err := r.db.Querier(ctx).QueryRow(ctx, query, start, end).Scan(&visitors); err != nil {
		return 0, postgres.WrapError(err, ticketsTable)
	}
	return visitors, nil
}

// AttendanceByDay returns per-day distinct visitor counts, date ascending.
func (r *TicketRepo) AttendanceByDay(ctx context.Context, start, end time.Time) ([]reports.DailyAttendance, error) {
	query := `
		SELECT
			t.visit_at::date AS date,
			COUNT(DISTINCT t.client_id) AS visitors
		FROM tickets t
		WHERE t.status IN ('confirmed', 'used')
		  AND t.visit_at >= $1
		  AND t.visit_at <= $2
		GROUP BY t.visit_at::date
		ORDER BY date ASC
	`

	var days []reports.DailyAttendance
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &days, query, start, end); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return days, nil
}

// AttendanceByHour returns distinct visitor counts grouped by hour of visit,
// hour ascending. Hours without visits produce no row.
func (r *TicketRepo) AttendanceByHour(ctx context.Context, start, end time.Time) ([]reports.HourlyAttendance, error) {
	query := `
		SELECT
			EXTRACT(HOUR FROM t.visit_at)::int AS hour,
			COUNT(DISTINCT t.client_id) AS visitors
		FROM tickets t
		WHERE t.status IN ('confirmed', 'used')
		  AND t.visit_at >= $1
		  AND t.visit_at <= $2
		GROUP BY EXTRACT(HOUR FROM t.visit_at)
		ORDER BY hour ASC
	`

	var hours []reports.HourlyAttendance
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &hours, query, start, end); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return hours, nil
}

// VisitorBirthDates returns the birth dates of distinct visitors in [start, end].
func (r *TicketRepo) VisitorBirthDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT ON (c.id) c.birth_date
		FROM tickets t
		JOIN clients c ON c.id = t.client_id
		WHERE t.status IN ('confirmed', 'used')
		  AND t.visit_at >= $1
		  AND t.visit_at <= $2
		ORDER BY c.id ASC
	`

	var dates []time.Time
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &dates, query, start, end); err != nil {
		return nil, postgres.WrapError(err, ticketsTable)
	}
	return dates, nil
}
