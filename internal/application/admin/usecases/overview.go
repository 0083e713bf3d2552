package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/category"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/hospital"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/team"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// OverviewResult feeds the admin panel: every taxonomy plus the roster and
// the full user list.
type OverviewResult struct {
	Categories category.Catalog
	Hospitals  []*hospital.Hospital
	Team       []*team.Member
	Users      []*user.User
}

type OverviewUseCase struct {
	categoryRepo category.Repository
	hospitalRepo hospital.Repository
	teamRepo     team.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewOverviewUseCase(
	categoryRepo category.Repository,
	hospitalRepo hospital.Repository,
	teamRepo team.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *OverviewUseCase {
	return &OverviewUseCase{
		categoryRepo: categoryRepo,
		hospitalRepo: hospitalRepo,
		teamRepo:     teamRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *OverviewUseCase) Execute(ctx context.Context) (*OverviewResult, error) {
	categories, err := uc.categoryRepo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	hospitals, err := uc.hospitalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	members, err := uc.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &OverviewResult{
		Categories: categories,
		Hospitals:  hospitals,
		Team:       members,
		Users:      users,
	}, nil
}
