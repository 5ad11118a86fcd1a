// Package entity_repo provides PostgreSQL implementations for entity repositories.
// One generic CRUD engine serves every table; each repository declares its
// field-descriptor table and adds specialized queries on top.
package entity_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
	"parkly/internal/infrastructure/storage/postgres"
)

// Field describes one writable column of an entity table: the column name
// and the accessor extracting its value from the entity. The primary key
// is implied by entity.Record and never part of a write set.
type Field[T any] struct {
	Column string
	Value  func(T) any
}

// BaseRepo provides table-agnostic CRUD over an injected connection provider.
// Embed this in specific entity repositories.
type BaseRepo[T entity.Identifiable] struct {
	db     *postgres.DB
	table  string
	fields []Field[T]
	cols   []string // "id" + writable columns, select order
	newFn  func() T
}

// NewBaseRepo creates a base repository bound to one table.
func NewBaseRepo[T entity.Identifiable](
	db *postgres.DB,
	table string,
	fields []Field[T],
	newFn func() T,
) *BaseRepo[T] {
	cols := make([]string, 0, len(fields)+1)
	cols = append(cols, "id")
	for _, f := range fields {
		cols = append(cols, f.Column)
	}
	return &BaseRepo[T]{
		db:     db,
		table:  table,
		fields: fields,
		cols:   cols,
		newFn:  newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// baseSelect creates a SELECT builder over all bound columns.
func (r *BaseRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.cols...).
		From(r.table)
}

// insertBuilder lists every writable field in declaration order; the key
// column is assigned by the database and returned.
func (r *BaseRepo[T]) insertBuilder(e T) squirrel.InsertBuilder {
	cols := make([]string, 0, len(r.fields))
	vals := make([]any, 0, len(r.fields))
	for _, f := range r.fields {
		cols = append(cols, f.Column)
		vals = append(vals, f.Value(e))
	}
	return r.Builder().
		Insert(r.table).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id")
}

// updateBuilder sets every writable field, keyed by primary key.
func (r *BaseRepo[T]) updateBuilder(e T) squirrel.UpdateBuilder {
	q := r.Builder().Update(r.table)
	for _, f := range r.fields {
		q = q.Set(f.Column, f.Value(e))
	}
	return q.Where(squirrel.Eq{"id": e.GetID()})
}

// pagedBuilder orders by primary key so successive pages cover the table
// without duplicates or omissions.
func (r *BaseRepo[T]) pagedBuilder(page, size int) squirrel.SelectBuilder {
	offset := (page - 1) * size
	return r.baseSelect().
		OrderBy("id ASC").
		Limit(uint64(size)).
		Offset(uint64(offset))
}

// GetAll retrieves every row of the bound table.
func (r *BaseRepo[T]) GetAll(ctx context.Context) ([]T, error) {
	sql, args, err := r.baseSelect().ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, r.table)
	}
	return items, nil
}

// GetByID retrieves a single entity by primary key.
func (r *BaseRepo[T]) GetByID(ctx context.Context, id int64) (T, error) {
	e := r.newFn()

	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return e, apperror.NewInternal(err)
	}

	if err := pgxscan.Get(ctx, r.db.Querier(ctx), e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return e, apperror.NewNotFound(r.table, id)
		}
		return e, postgres.WrapError(err, r.table)
	}
	return e, nil
}

// Create inserts the entity and populates its database-assigned id.
func (r *BaseRepo[T]) Create(ctx context.Context, e T) error {
	sql, args, err := r.insertBuilder(e).ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	var id int64
	if err := r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return postgres.WrapError(err, r.table)
	}
	e.SetID(id)
	return nil
}

// Update replaces all non-key fields, keyed by primary key.
// Zero rows affected means "no such entity" and is not an error.
func (r *BaseRepo[T]) Update(ctx context.Context, e T) (bool, error) {
	sql, args, err := r.updateBuilder(e).ToSql()
	if err != nil {
		return false, apperror.NewInternal(err)
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.WrapError(err, r.table)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the entity by primary key, with Update's zero-row semantics.
func (r *BaseRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.Builder().
		Delete(r.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, apperror.NewInternal(err)
	}

	tag, err := r.db.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.WrapError(err, r.table)
	}
	return tag.RowsAffected() == 1, nil
}

// GetPaged retrieves one page using 1-based page numbers.
func (r *BaseRepo[T]) GetPaged(ctx context.Context, page, size int) ([]T, error) {
	if page < 1 {
		return nil, apperror.NewValidation("page number must be at least 1").
			WithDetail("page", page)
	}
	if size < 1 {
		return nil, apperror.NewValidation("page size must be positive").
			WithDetail("size", size)
	}

	sql, args, err := r.pagedBuilder(page, size).ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, r.table)
	}
	return items, nil
}

// Count returns the total row count for the bound table.
func (r *BaseRepo[T]) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.Builder().
		Select("COUNT(*)").
		From(r.table).
		ToSql()
	if err != nil {
		return 0, apperror.NewInternal(err)
	}

	var count int64
	if err := r.db.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.WrapError(err, r.table)
	}
	return count, nil
}

// applyRange narrows q to the inclusive [start, end] window on column.
// Nil bounds leave that side of the window open; both nil means no narrowing.
func applyRange(q squirrel.SelectBuilder, column string, start, end *time.Time) squirrel.SelectBuilder {
	if start != nil {
		q = q.Where(squirrel.GtOrEq{column: *start})
	}
	if end != nil {
		q = q.Where(squirrel.LtOrEq{column: *end})
	}
	return q
}
