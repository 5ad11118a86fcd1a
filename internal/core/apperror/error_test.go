package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewValidation("page number must be at least 1")
	assert.Equal(t, "VALIDATION_ERROR: page number must be at least 1", err.Error())

	withCause := NewDatabase(errors.New("connection refused"))
	assert.Contains(t, withCause.Error(), "caused by: connection refused")
}

func TestAppError_UnwrapChain(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternal(cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("layer: %w", err)
	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInternal, appErr.Code)
}

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "validation", err: NewValidation("bad"), wantCode: CodeValidation, wantStatus: http.StatusBadRequest},
		{name: "not found", err: NewNotFound("clients", int64(7)), wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "database", err: NewDatabase(errors.New("x")), wantCode: CodeDatabase, wantStatus: http.StatusInternalServerError},
		{name: "conflict", err: NewConflict("busy"), wantCode: CodeConflict, wantStatus: http.StatusConflict},
		{name: "duplicate", err: NewDuplicate("clients", "email"), wantCode: CodeDuplicate, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantStatus, GetHTTPStatus(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("orders", 1)))
	assert.False(t, IsNotFound(NewValidation("x")))

	assert.True(t, IsValidation(NewValidation("x")))
	assert.True(t, IsDatabase(NewDatabase(errors.New("x"))))
	assert.False(t, IsDatabase(errors.New("plain")))

	// Wrapped errors keep their identity.
	wrapped := fmt.Errorf("get by id: %w", NewNotFound("orders", 1))
	assert.True(t, IsNotFound(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("invalid email").
		WithDetail("field", "email").
		WithDetail("value", "nope")

	assert.Equal(t, "email", err.Details["field"])
	assert.Equal(t, "nope", err.Details["value"])
}

func TestGetHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}
