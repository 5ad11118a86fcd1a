// Package entity provides base types shared by all persisted records.
package entity

import "context"

// Record contains the primary key common to all entities.
// The key is assigned by the persistence layer on insert and never changes.
type Record struct {
	ID int64 `db:"id" json:"id"`
}

// GetID returns the primary key.
func (r *Record) GetID() int64 { return r.ID }

// SetID assigns the repository-generated primary key.
// Called by the repository after INSERT ... RETURNING id.
func (r *Record) SetID(id int64) { r.ID = id }

// Identifiable is implemented by every entity via the embedded Record.
type Identifiable interface {
	GetID() int64
	SetID(int64)
}

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}
