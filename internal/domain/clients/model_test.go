package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkly/internal/core/apperror"
)

func TestClientValidate(t *testing.T) {
	ctx := context.Background()
	birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*Client)
		wantField string
	}{
		{name: "valid", mutate: func(c *Client) {}},
		{name: "missing first name", mutate: func(c *Client) { c.FirstName = "" }, wantField: "firstName"},
		{name: "missing last name", mutate: func(c *Client) { c.LastName = "" }, wantField: "lastName"},
		{name: "empty email", mutate: func(c *Client) { c.Email = "" }, wantField: "email"},
		{name: "malformed email", mutate: func(c *Client) { c.Email = "not-an-email" }, wantField: "email"},
		{name: "email without tld", mutate: func(c *Client) { c.Email = "a@b" }, wantField: "email"},
		{name: "future birth date", mutate: func(c *Client) { c.BirthDate = time.Now().AddDate(1, 0, 0) }, wantField: "birthDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient("Ada", "Park", "ada@example.com", birth)
			tt.mutate(c)

			err := c.Validate(ctx)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			appErr, _ := apperror.AsAppError(err)
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("Ada", "Park", "ada@example.com", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))

	assert.True(t, c.IsActive)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, int64(0), c.GetID())
	assert.Equal(t, "Ada Park", c.FullName())
}
