// Package usecases holds the issue workflows. Each use case takes a command
// or query struct and exposes a single Execute method.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

// sanitizer strips markup from user-supplied free text before it hits the
// store. Policies are safe for concurrent use.
var sanitizer = bluemonday.StrictPolicy()

type CreateIssueCommand struct {
	HospitalUnit     string
	Zone             string
	Priority         string
	MainCategory     string
	SubCategory      string
	OtherSubCategory string
	TaskName         string
	Description      string
	MainOwner        string
	CoOwners         []string
	DueDate          string
	ActorName        string
}

type CreateIssueResult struct {
	IssueID    string
	Status     string
	DateLogged string
}

type CreateIssueUseCase struct {
	issueRepo   issue.Repository
	historyRepo issue.HistoryRepository
	logger      logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.Repository,
	historyRepo issue.HistoryRepository,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:   issueRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "task_name", cmd.TaskName, "actor", cmd.ActorName)

	now := time.Now()
	newIssue, err := issue.NewIssue(
		cmd.HospitalUnit,
		cmd.Zone,
		composeCategory(cmd.MainCategory, cmd.SubCategory, cmd.OtherSubCategory),
		cmd.TaskName,
		sanitizer.Sanitize(cmd.Description),
		cmd.MainOwner,
		cmd.CoOwners,
		vo.ParsePriority(cmd.Priority),
		cmd.DueDate,
		cmd.ActorName,
		now,
	)
	if err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	if err := uc.issueRepo.Save(ctx, newIssue); err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	entry := &issue.HistoryEntry{
		User:      cmd.ActorName,
		Action:    fmt.Sprintf("created the task for %s.", newIssue.HospitalUnit),
		Timestamp: utils.FormatTimestamp(now),
	}
	if err := uc.historyRepo.Add(ctx, newIssue.ID, entry); err != nil {
		uc.logger.Errorw("failed to record issue history", "issue_id", newIssue.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue created", "issue_id", newIssue.ID)

	return &CreateIssueResult{
		IssueID:    newIssue.ID,
		Status:     newIssue.Status.String(),
		DateLogged: newIssue.DateLogged,
	}, nil
}

// composeCategory joins the main category with whichever subcategory variant
// was supplied, free text winning over the picker.
func composeCategory(main, sub, other string) string {
	switch {
	case other != "":
		return fmt.Sprintf("%s: %s", main, other)
	case sub != "":
		return fmt.Sprintf("%s: %s", main, sub)
	default:
		return main
	}
}
