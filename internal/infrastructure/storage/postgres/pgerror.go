package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"parkly/internal/core/apperror"
)

// PostgreSQL error codes the repositories react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// WrapError maps a driver error onto the platform taxonomy.
// Constraint violations become conflicts; everything else is a database
// error carrying the original cause.
func WrapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperror.NewDuplicate(entity, pgErr.ConstraintName).WithCause(err)
		case codeForeignKeyViolation:
			return apperror.NewConflict("related record is missing or still referenced").
				WithDetail("entity", entity).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}

	return apperror.NewDatabase(err).WithDetail("entity", entity)
}
