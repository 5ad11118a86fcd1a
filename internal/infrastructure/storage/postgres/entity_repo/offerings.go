package entity_repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/offerings"
	"parkly/internal/infrastructure/storage/postgres"
)

const offeringsTable = "offerings"

var offeringFields = []Field[*offerings.Offering]{
	{Column: "name", Value: func(o *offerings.Offering) any { return o.Name }},
	{Column: "price", Value: func(o *offerings.Offering) any { return o.Price }},
	{Column: "usage_count", Value: func(o *offerings.Offering) any { return o.UsageCount }},
	{Column: "is_active", Value: func(o *offerings.Offering) any { return o.IsActive }},
}

// OfferingRepo implements offerings.Repository.
type OfferingRepo struct {
	*BaseRepo[*offerings.Offering]
}

var _ offerings.Repository = (*OfferingRepo)(nil)

// NewOfferingRepo creates a new offering repository.
func NewOfferingRepo(db *postgres.DB) *OfferingRepo {
	return &OfferingRepo{
		BaseRepo: NewBaseRepo(db, offeringsTable, offeringFields,
			func() *offerings.Offering { return &offerings.Offering{} }),
	}
}

// GetActive retrieves active offerings ordered by name.
func (r *OfferingRepo) GetActive(ctx context.Context) ([]*offerings.Offering, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*offerings.Offering
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, offeringsTable)
	}
	return items, nil
}

// IncrementUsage bumps the usage counter by one.
// Returns false when the offering does not exist.
func (r *OfferingRepo) IncrementUsage(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.Builder().
		Update(offeringsTable).
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, apperror.NewInternal(err)
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.WrapError(err, offeringsTable)
	}
	return tag.RowsAffected() == 1, nil
}

// UsageStats returns offerings ranked by usage count descending.
func (r *OfferingRepo) UsageStats(ctx context.Context) ([]offerings.Usage, error) {
	sql, args, err := r.Builder().
		Select(
			"id AS offering_id",
			"name",
			"usage_count",
		).
		From(offeringsTable).
		OrderBy("usage_count DESC", "offering_id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var usage []offerings.Usage
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &usage, sql, args...); err != nil {
		return nil, postgres.WrapError(err, offeringsTable)
	}
	return usage, nil
}
