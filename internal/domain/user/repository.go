package user

import "context"

// Repository is the user collection contract, keyed by normalized email.
type Repository interface {
	List(ctx context.Context) ([]*User, error)

	// GetByEmail normalizes the argument before matching. Returns a
	// NotFound error when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// Upsert creates or updates keyed by email. An existing email keeps
	// its original id; a new one gets the next numeric id assigned.
	Upsert(ctx context.Context, u *User) error
}
