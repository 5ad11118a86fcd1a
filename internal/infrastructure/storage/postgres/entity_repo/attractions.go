package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/attractions"
	"parkly/internal/infrastructure/storage/postgres"
)

const attractionsTable = "attractions"

var attractionFields = []Field[*attractions.Attraction]{
	{Column: "name", Value: func(a *attractions.Attraction) any { return a.Name }},
	{Column: "zone_id", Value: func(a *attractions.Attraction) any { return a.ZoneID }},
	{Column: "price", Value: func(a *attractions.Attraction) any { return a.Price }},
	{Column: "min_age", Value: func(a *attractions.Attraction) any { return a.MinAge }},
	{Column: "is_active", Value: func(a *attractions.Attraction) any { return a.IsActive }},
	{Column: "description", Value: func(a *attractions.Attraction) any { return a.Description }},
}

// AttractionRepo implements attractions.Repository.
type AttractionRepo struct {
	*BaseRepo[*attractions.Attraction]
}

var _ attractions.Repository = (*AttractionRepo)(nil)

// NewAttractionRepo creates a new attraction repository.
func NewAttractionRepo(db *postgres.DB) *AttractionRepo {
	return &AttractionRepo{
		BaseRepo: NewBaseRepo(db, attractionsTable, attractionFields,
			func() *attractions.Attraction { return &attractions.Attraction{} }),
	}
}

// GetActive retrieves active attractions ordered by name.
func (r *AttractionRepo) GetActive(ctx context.Context) ([]*attractions.Attraction, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*attractions.Attraction
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, attractionsTable)
	}
	return items, nil
}

// GetByZone retrieves a zone's attractions ordered by name.
func (r *AttractionRepo) GetByZone(ctx context.Context, zoneID int64) ([]*attractions.Attraction, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"zone_id": zoneID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*attractions.Attraction
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, attractionsTable)
	}
	return items, nil
}

// Popularity returns visit counts per attraction from valid tickets, visits
// descending. A nil start/end leaves the range unbounded on that side.
func (r *AttractionRepo) Popularity(ctx context.Context, start, end *time.Time) ([]attractions.Popularity, error) {
	q := r.Builder().
		Select(
			"a.id AS attraction_id",
			"a.name AS attraction_name",
			"COUNT(t.id) AS visits",
		).
		From(attractionsTable+" a").
		Join("tickets t ON t.attraction_id = a.id").
		Where(squirrel.Eq{"t.status": []string{"confirmed", "used"}}).
		GroupBy("a.id", "a.name").
		OrderBy("visits DESC", "attraction_id ASC")
	q = applyRange(q, "t.visit_at", start, end)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var ranking []attractions.Popularity
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &ranking, sql, args...); err != nil {
		return nil, postgres.WrapError(err, attractionsTable)
	}
	return ranking, nil
}
