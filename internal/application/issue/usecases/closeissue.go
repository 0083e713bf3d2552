package usecases

import (
	"context"
	"time"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type CloseIssueCommand struct {
	IssueID   string
	ActorName string
}

type CloseIssueResult struct {
	// AlreadyClosed marks the informational no-op outcome.
	AlreadyClosed bool
	DateClosed    string
}

type CloseIssueUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewCloseIssueUseCase(issueRepo issue.Repository, logger logger.Interface) *CloseIssueUseCase {
	return &CloseIssueUseCase{issueRepo: issueRepo, logger: logger}
}

func (uc *CloseIssueUseCase) Execute(ctx context.Context, cmd CloseIssueCommand) (*CloseIssueResult, error) {
	found, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	if !found.Close(cmd.ActorName, time.Now()) {
		uc.logger.Infow("close requested on closed issue", "issue_id", cmd.IssueID)
		return &CloseIssueResult{AlreadyClosed: true, DateClosed: found.DateClosed}, nil
	}

	if err := uc.issueRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to close issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue closed", "issue_id", cmd.IssueID, "actor", cmd.ActorName)
	return &CloseIssueResult{DateClosed: found.DateClosed}, nil
}
