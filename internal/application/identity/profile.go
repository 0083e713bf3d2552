package identity

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// ProfileUseCase is the self-service surface: a user reads their own record
// and maintains their Google Chat webhook.
type ProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewProfileUseCase(userRepo user.Repository, logger logger.Interface) *ProfileUseCase {
	return &ProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ProfileUseCase) Get(ctx context.Context, email string) (*user.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// UpdateWebhook stores the webhook URL. The field is kept for future
// notification delivery; nothing posts to it yet.
func (uc *ProfileUseCase) UpdateWebhook(ctx context.Context, email, webhookURL string) (*user.User, error) {
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	u.GoogleChatWebhookURL = webhookURL
	if err := uc.userRepo.Upsert(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "email", email)
	return u, nil
}
