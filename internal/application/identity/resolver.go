// Package identity resolves the effective principal for a request and keeps
// stored roles aligned with the configured admin allow-list.
package identity

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// Principal is the resolved request identity with the effective role.
type Principal struct {
	UserID string
	Email  string
	Name   string
	Role   authorization.UserRole
}

type Resolver struct {
	userRepo    user.Repository
	adminEmails map[string]bool
	logger      logger.Interface
}

func NewResolver(userRepo user.Repository, adminEmails []string, logger logger.Interface) *Resolver {
	allowed := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		allowed[user.NormalizeEmail(email)] = true
	}
	return &Resolver{userRepo: userRepo, adminEmails: allowed, logger: logger}
}

// DeriveRole maps an email onto the allow-list.
func (r *Resolver) DeriveRole(email string) authorization.UserRole {
	if r.adminEmails[user.NormalizeEmail(email)] {
		return authorization.RoleAdmin
	}
	return authorization.RoleMember
}

// Resolve looks up the user by email and reconciles the stored role against
// the allow-list, persisting both promotions and demotions. Runs on every
// protected request so allow-list edits take effect without re-login.
func (r *Resolver) Resolve(ctx context.Context, email string) (*Principal, error) {
	u, err := r.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	derived := r.DeriveRole(u.Email)
	if u.Role != derived {
		r.logger.Infow("reconciling user role", "email", u.Email, "stored", u.Role, "derived", derived)
		u.Role = derived
		if err := r.userRepo.Upsert(ctx, u); err != nil {
			r.logger.Errorw("failed to persist role reconciliation", "email", u.Email, "error", err)
			return nil, err
		}
	}

	return &Principal{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
}

// ResolveOrCreate is the login-path variant: an unknown email gets a user
// record created lazily, name defaulting to the email's local part.
func (r *Resolver) ResolveOrCreate(ctx context.Context, email, name string) (*Principal, error) {
	normalized := user.NormalizeEmail(email)

	u, err := r.userRepo.GetByEmail(ctx, normalized)
	switch {
	case err == nil:
		if name != "" && u.Name != name {
			u.Name = name
		}
	case errors.IsNotFoundError(err):
		u, err = user.NewUser(normalized, name, r.DeriveRole(normalized))
		if err != nil {
			return nil, err
		}
		r.logger.Infow("creating user on first login", "email", normalized)
	default:
		return nil, err
	}

	u.Role = r.DeriveRole(u.Email)
	if err := r.userRepo.Upsert(ctx, u); err != nil {
		r.logger.Errorw("failed to persist user on login", "email", normalized, "error", err)
		return nil, err
	}

	return &Principal{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
}
