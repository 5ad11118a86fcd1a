// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"parkly/internal/core/entity"
)

// Repository defines table-agnostic CRUD operations shared by every entity.
// Implementations are parameterized by an explicit field-descriptor table,
// so one generic engine serves all entity tables.
type Repository[T entity.Identifiable] interface {
	// GetAll retrieves every row of the bound table.
	// Order is the persistence layer's default; use a specialized method
	// when a stable order or a bounded result is required.
	GetAll(ctx context.Context) ([]T, error)

	// GetByID retrieves a single entity by primary key.
	// Absence is reported as apperror NOT_FOUND, checkable with apperror.IsNotFound.
	GetByID(ctx context.Context, id int64) (T, error)

	// Create inserts the entity and populates its repository-assigned ID.
	// Constraint violations propagate, never silently ignored.
	Create(ctx context.Context, e T) error

	// Update replaces all non-key fields, keyed by primary key.
	// Returns false when no row matched; that is not an error.
	Update(ctx context.Context, e T) (bool, error)

	// Delete removes the entity by primary key.
	// Returns false when no row matched; that is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// GetPaged retrieves one page using 1-based page numbers.
	// Page and size are validated before any query is issued.
	GetPaged(ctx context.Context, page, size int) ([]T, error)

	// Count returns the total row count of the bound table.
	Count(ctx context.Context) (int64, error)
}
