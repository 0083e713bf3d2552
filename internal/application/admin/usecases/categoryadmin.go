// Package usecases holds the admin panel workflows: taxonomy management,
// roster management, and user role assignment.
package usecases

import (
	"context"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/category"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// CategoryAdminUseCase covers the category taxonomy CRUD. The operations are
// thin enough that one use case carries all of them.
type CategoryAdminUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCategoryAdminUseCase(categoryRepo category.Repository, logger logger.Interface) *CategoryAdminUseCase {
	return &CategoryAdminUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CategoryAdminUseCase) List(ctx context.Context) (category.Catalog, error) {
	return uc.categoryRepo.Catalog(ctx)
}

func (uc *CategoryAdminUseCase) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("category name is required")
	}
	if err := uc.categoryRepo.Add(ctx, name); err != nil {
		return err
	}
	uc.logger.Infow("category added", "name", name)
	return nil
}

func (uc *CategoryAdminUseCase) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.NewValidationError("category name is required")
	}
	if err := uc.categoryRepo.Rename(ctx, oldName, newName); err != nil {
		return err
	}
	uc.logger.Infow("category renamed", "from", oldName, "to", newName)
	return nil
}

func (uc *CategoryAdminUseCase) Delete(ctx context.Context, name string) error {
	if err := uc.categoryRepo.Delete(ctx, name); err != nil {
		return err
	}
	uc.logger.Infow("category deleted", "name", name)
	return nil
}

func (uc *CategoryAdminUseCase) AddSub(ctx context.Context, name, sub string) error {
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return errors.NewValidationError("subcategory name is required")
	}
	return uc.categoryRepo.AddSub(ctx, name, sub)
}

func (uc *CategoryAdminUseCase) RenameSub(ctx context.Context, name, oldSub, newSub string) error {
	newSub = strings.TrimSpace(newSub)
	if newSub == "" {
		return errors.NewValidationError("subcategory name is required")
	}
	return uc.categoryRepo.RenameSub(ctx, name, oldSub, newSub)
}

func (uc *CategoryAdminUseCase) DeleteSub(ctx context.Context, name, sub string) error {
	return uc.categoryRepo.DeleteSub(ctx, name, sub)
}
