// Package clients provides the Client catalog: registered venue visitors.
package clients

import (
	"context"
	"regexp"
	"time"

	"parkly/internal/core/apperror"
	"parkly/internal/core/entity"
)

// Client represents a registered visitor of the venue.
type Client struct {
	entity.Record

	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`

	// Email is unique across clients
	Email string `db:"email" json:"email"`

	Phone *string `db:"phone" json:"phone,omitempty"`

	// BirthDate feeds the attendance report's age-group banding
	BirthDate time.Time `db:"birth_date" json:"birthDate"`

	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewClient creates a new Client with required fields.
func NewClient(firstName, lastName, email string, birthDate time.Time) *Client {
	return &Client{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		BirthDate: birthDate,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// FullName returns the display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if c.FirstName == "" {
		return apperror.NewValidation("first name is required").WithDetail("field", "firstName")
	}
	if c.LastName == "" {
		return apperror.NewValidation("last name is required").WithDetail("field", "lastName")
	}
	if !isValidEmail(c.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email").
			WithDetail("value", c.Email)
	}
	if c.BirthDate.After(time.Now()) {
		return apperror.NewValidation("birth date cannot be in the future").
			WithDetail("field", "birthDate")
	}
	return nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
