// Package team holds the team roster: a denormalized subset of users kept
// separately so the roster can differ from the full user set.
package team

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

type Member struct {
	UID   string
	Name  string
	Email string
}

func NewMember(uid, name, email string) (*Member, error) {
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	return &Member{UID: uid, Name: name, Email: email}, nil
}

// Repository is the team roster contract.
type Repository interface {
	List(ctx context.Context) ([]*Member, error)

	// Add rejects a member whose email is already on the roster.
	Add(ctx context.Context, m *Member) error

	RemoveByUID(ctx context.Context, uid string) error
}
