// Package user holds the user entity and its repository contract. Users are
// keyed by normalized email; at most one record exists per email.
package user

import (
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

type User struct {
	ID                   string
	Email                string
	Name                 string
	Role                 authorization.UserRole
	GoogleChatWebhookURL string
}

// NewUser creates a user with a normalized email. Name defaults to the
// local part of the email.
func NewUser(email, name string, role authorization.UserRole) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if name == "" {
		name = LocalPart(email)
	}
	if !role.IsValid() {
		role = authorization.RoleMember
	}
	return &User{
		Email: email,
		Name:  name,
		Role:  role,
	}, nil
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LocalPart returns everything before the @.
func LocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
