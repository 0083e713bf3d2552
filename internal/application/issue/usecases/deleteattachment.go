package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	IssueID      string
	AttachmentID string
}

type DeleteAttachmentUseCase struct {
	attachmentRepo issue.AttachmentRepository
	files          *storage.AttachmentFiles
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo issue.AttachmentRepository,
	files *storage.AttachmentFiles,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		files:          files,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	attachment, err := uc.attachmentRepo.GetByID(ctx, cmd.IssueID, cmd.AttachmentID)
	if err != nil {
		return err
	}

	if err := uc.files.Remove(cmd.IssueID, attachment.FileName); err != nil {
		uc.logger.Errorw("failed to remove attachment file", "issue_id", cmd.IssueID, "file", attachment.FileName, "error", err)
		return err
	}

	if err := uc.attachmentRepo.Remove(ctx, cmd.IssueID, cmd.AttachmentID); err != nil {
		uc.logger.Errorw("failed to remove attachment record", "issue_id", cmd.IssueID, "attachment_id", cmd.AttachmentID, "error", err)
		return err
	}

	uc.logger.Infow("attachment deleted", "issue_id", cmd.IssueID, "attachment_id", cmd.AttachmentID)
	return nil
}
