package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID string
}

type GetIssueResult struct {
	Issue        *issue.Issue
	CreatorEmail string
	Comments     []*issue.Comment
	History      []*issue.HistoryEntry
	Attachments  []*issue.Attachment
}

type GetIssueUseCase struct {
	issueRepo      issue.Repository
	commentRepo    issue.CommentRepository
	historyRepo    issue.HistoryRepository
	attachmentRepo issue.AttachmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.Repository,
	commentRepo issue.CommentRepository,
	historyRepo issue.HistoryRepository,
	attachmentRepo issue.AttachmentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:      issueRepo,
		commentRepo:    commentRepo,
		historyRepo:    historyRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*GetIssueResult, error) {
	found, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByIssue(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "issue_id", query.IssueID, "error", err)
		return nil, err
	}
	history, err := uc.historyRepo.ListByIssue(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to load history", "issue_id", query.IssueID, "error", err)
		return nil, err
	}
	attachments, err := uc.attachmentRepo.ListByIssue(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load users for email lookup", "error", err)
		return nil, err
	}
	emailByName := make(map[string]string, len(users))
	for _, u := range users {
		emailByName[u.Name] = u.Email
	}

	// Older comment records predate the authorEmail column.
	for _, c := range comments {
		if c.AuthorEmail == "" {
			c.AuthorEmail = emailByName[c.AuthorName]
		}
	}

	return &GetIssueResult{
		Issue:        found,
		CreatorEmail: emailByName[found.CreatedBy],
		Comments:     comments,
		History:      history,
		Attachments:  attachments,
	}, nil
}
