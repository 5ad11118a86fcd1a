package entity_repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"parkly/internal/core/apperror"
	"parkly/internal/domain/employees"
	"parkly/internal/infrastructure/storage/postgres"
)

const employeesTable = "employees"

var employeeFields = []Field[*employees.Employee]{
	{Column: "first_name", Value: func(e *employees.Employee) any { return e.FirstName }},
	{Column: "last_name", Value: func(e *employees.Employee) any { return e.LastName }},
	{Column: "position", Value: func(e *employees.Employee) any { return e.Position }},
	{Column: "zone_id", Value: func(e *employees.Employee) any { return e.ZoneID }},
	{Column: "hired_at", Value: func(e *employees.Employee) any { return e.HiredAt }},
	{Column: "is_active", Value: func(e *employees.Employee) any { return e.IsActive }},
}

// EmployeeRepo implements employees.Repository.
type EmployeeRepo struct {
	*BaseRepo[*employees.Employee]
}

var _ employees.Repository = (*EmployeeRepo)(nil)

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(db *postgres.DB) *EmployeeRepo {
	return &EmployeeRepo{
		BaseRepo: NewBaseRepo(db, employeesTable, employeeFields,
			func() *employees.Employee { return &employees.Employee{} }),
	}
}

// GetActive retrieves active employees ordered by last name, first name.
func (r *EmployeeRepo) GetActive(ctx context.Context) ([]*employees.Employee, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*employees.Employee
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, employeesTable)
	}
	return items, nil
}

// GetByZone retrieves a zone's active employees ordered by last name.
func (r *EmployeeRepo) GetByZone(ctx context.Context, zoneID int64) ([]*employees.Employee, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"zone_id": zoneID, "is_active": true}).
		OrderBy("last_name ASC", "first_name ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var items []*employees.Employee
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.WrapError(err, employeesTable)
	}
	return items, nil
}

// CountByPosition returns active headcount per position, count descending.
func (r *EmployeeRepo) CountByPosition(ctx context.Context) ([]employees.PositionCount, error) {
	sql, args, err := r.Builder().
		Select(
			"position",
			"COUNT(*) AS count",
		).
		From(employeesTable).
		Where(squirrel.Eq{"is_active": true}).
		GroupBy("position").
		OrderBy("count DESC", "position ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var counts []employees.PositionCount
	if err := pgxscan.Select(ctx, r.db.Querier(ctx), &counts, sql, args...); err != nil {
		return nil, postgres.WrapError(err, employeesTable)
	}
	return counts, nil
}
