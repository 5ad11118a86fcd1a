package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/zones"
	"parkly/internal/infrastructure/storage/postgres"
)

const zonesTable = "zones"

var zoneFields = []Field[*zones.Zone]{
	{Column: "name", Value: func(z *zones.Zone) any { return z.Name }},
	{Column: "capacity", Value: func(z *zones.Zone) any { return z.Capacity }},
	{Column: "is_active", Value: func(z *zones.Zone) any { return z.IsActive }},
	{Column: "description", Value: func(z *zones.Zone) any { return z.Description }},
}

// ZoneRepo implements zones.Repository.
type ZoneRepo struct {
	*BaseRepo[*zones.Zone]
}

var _ zones.Repository = (*ZoneRepo)(nil)

// NewZoneRepo creates a new zone repository.
func NewZoneRepo(db *postgres.DB) *ZoneRepo {
	return &ZoneRepo{
		BaseRepo: NewBaseRepo(db, zonesTable, zoneFields,
			func() *zones.Zone { return &zones.Zone{} }),
	}
}

// GetActive retrieves active zones ordered by name.
func (r *ZoneRepo) GetActive(ctx context.Context) ([]*zones.Zone, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*zones.Zone
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, zonesTable)
	}
	return items, nil
}

// Popularity returns visitor counts per zone from valid tickets, visitors
// descending. A nil start/end leaves the range unbounded on that side.
func (r *ZoneRepo) Popularity(ctx context.Context, start, end *time.Time) ([]zones.Popularity, error) {
	q := r.Builder().
		Select(
			"z.id AS zone_id",
			"z.name AS zone_name",
			"COUNT(DISTINCT t.client_id) AS visitors",
		).
		From(zonesTable+" z").
		Join("attractions a ON a.zone_id = z.id").
		Join("tickets t ON t.attraction_id = a.id").
		Where(squirrel.Eq{"t.status": []string{"confirmed", "used"}}).
		GroupBy("z.id", "z.name").
		OrderBy("visitors DESC", "zone_id ASC")
	q = applyRange(q, "t.visit_at", start, end)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var ranking []zones.Popularity
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &ranking, sql, args...); err != nil {
		return nil, postgres.WrapError(err, zonesTable)
	}
	return ranking, nil
}
