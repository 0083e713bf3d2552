package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/team"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type TeamAdminUseCase struct {
	teamRepo team.Repository
	userRepo user.Repository
	logger   logger.Interface
}

func NewTeamAdminUseCase(teamRepo team.Repository, userRepo user.Repository, logger logger.Interface) *TeamAdminUseCase {
	return &TeamAdminUseCase{teamRepo: teamRepo, userRepo: userRepo, logger: logger}
}

func (uc *TeamAdminUseCase) List(ctx context.Context) ([]*team.Member, error) {
	return uc.teamRepo.List(ctx)
}

// Add puts an existing user on the roster. The user must have logged in at
// least once; the roster references the user's id.
func (uc *TeamAdminUseCase) Add(ctx context.Context, email string) (*team.Member, error) {
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found, they must log in before joining the team")
		}
		return nil, err
	}

	member, err := team.NewMember(u.ID, u.Name, u.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.teamRepo.Add(ctx, member); err != nil {
		return nil, err
	}

	uc.logger.Infow("team member added", "email", u.Email, "uid", member.UID)
	return member, nil
}

func (uc *TeamAdminUseCase) Remove(ctx context.Context, uid string) error {
	if err := uc.teamRepo.RemoveByUID(ctx, uid); err != nil {
		return err
	}
	uc.logger.Infow("team member removed", "uid", uid)
	return nil
}
