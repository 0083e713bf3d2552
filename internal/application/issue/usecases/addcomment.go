package usecases

import (
	"context"
	"time"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type AddCommentCommand struct {
	IssueID     string
	Text        string
	AuthorName  string
	AuthorEmail string
}

type AddCommentUseCase struct {
	issueRepo   issue.Repository
	commentRepo issue.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	issueRepo issue.Repository,
	commentRepo issue.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*issue.Comment, error) {
	text := sanitizer.Sanitize(cmd.Text)
	if text == "" {
		return nil, errors.NewValidationError("comment text is required")
	}

	found, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &issue.Comment{
		Text:        text,
		AuthorName:  cmd.AuthorName,
		AuthorEmail: cmd.AuthorEmail,
		Timestamp:   utils.FormatTimestamp(now),
	}
	if err := uc.commentRepo.Add(ctx, cmd.IssueID, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	found.Touch(cmd.AuthorName, now)
	if err := uc.issueRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to bump issue after comment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "issue_id", cmd.IssueID, "comment_id", comment.ID)
	return comment, nil
}
