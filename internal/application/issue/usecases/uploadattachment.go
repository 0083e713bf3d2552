package usecases

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type UploadAttachmentCommand struct {
	IssueID   string
	FileName  string
	Content   io.Reader
	ActorName string
}

type UploadAttachmentUseCase struct {
	issueRepo      issue.Repository
	attachmentRepo issue.AttachmentRepository
	historyRepo    issue.HistoryRepository
	files          *storage.AttachmentFiles
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	issueRepo issue.Repository,
	attachmentRepo issue.AttachmentRepository,
	historyRepo issue.HistoryRepository,
	files *storage.AttachmentFiles,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		historyRepo:    historyRepo,
		files:          files,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*issue.Attachment, error) {
	if _, err := uc.issueRepo.GetByID(ctx, cmd.IssueID); err != nil {
		return nil, err
	}

	stored, err := uc.files.Save(cmd.IssueID, cmd.FileName, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment file", "issue_id", cmd.IssueID, "file", cmd.FileName, "error", err)
		return nil, err
	}

	now := time.Now()
	attachment := &issue.Attachment{
		FileName:    stored,
		DownloadURL: fmt.Sprintf("/attachments/%s/%s", cmd.IssueID, stored),
		UploadedBy:  cmd.ActorName,
		Timestamp:   utils.FormatTimestamp(now),
	}
	if err := uc.attachmentRepo.Add(ctx, cmd.IssueID, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment record", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	entry := &issue.HistoryEntry{
		User:      cmd.ActorName,
		Action:    fmt.Sprintf("uploaded attachment: %s.", stored),
		Timestamp: utils.FormatTimestamp(now),
	}
	if err := uc.historyRepo.Add(ctx, cmd.IssueID, entry); err != nil {
		uc.logger.Errorw("failed to record attachment history", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded", "issue_id", cmd.IssueID, "file", stored)
	return attachment, nil
}
