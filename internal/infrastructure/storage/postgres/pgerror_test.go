package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkly/internal/core/apperror"
)

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "clients"))
}

func TestWrapError_UniqueViolation(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "clients_email_key"}

	err := WrapError(cause, "clients")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "clients_email_key", appErr.Details["field"])
	assert.ErrorIs(t, err, cause)
}

func TestWrapError_ForeignKeyViolation(t *testing.T) {
	cause := &pgconn.PgError{Code: "23503", ConstraintName: "tickets_order_id_fkey"}

	err := WrapError(cause, "tickets")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, "tickets_order_id_fkey", appErr.Details["constraint"])
}

func TestWrapError_WrappedDriverError(t *testing.T) {
	cause := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505", ConstraintName: "orders_pkey"})

	err := WrapError(cause, "orders")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestWrapError_GenericFailure(t *testing.T) {
	cause := errors.New("connection refused")

	err := WrapError(cause, "payments")
	require.True(t, apperror.IsDatabase(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "payments", appErr.Details["entity"])
	assert.ErrorIs(t, err, cause)
}
