package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type SetUserRoleCommand struct {
	Email string
	Role  string
}

// SetUserRoleUseCase assigns a role by email, creating the user record when
// it does not exist yet (name defaults to the email's local part).
type SetUserRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSetUserRoleUseCase(userRepo user.Repository, logger logger.Interface) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *SetUserRoleUseCase) Execute(ctx context.Context, cmd SetUserRoleCommand) (*user.User, error) {
	email := user.NormalizeEmail(cmd.Email)
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	role := authorization.ParseUserRole(cmd.Role)

	u, err := uc.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		u.Role = role
	case errors.IsNotFoundError(err):
		u, err = user.NewUser(email, "", role)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := uc.userRepo.Upsert(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist user role", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user role set", "email", email, "role", role)
	return u, nil
}
