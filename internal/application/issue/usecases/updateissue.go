package usecases

import (
	"context"
	"time"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type UpdateIssueCommand struct {
	IssueID      string
	HospitalUnit string
	Zone         string
	Priority     string
	Category     string
	TaskName     string
	Description  string
	MainOwner    string
	CoOwners     []string
	DueDate      string
	StepsTaken   string
	ReviewNotes  string
	ActorName    string
}

type UpdateIssueUseCase struct {
	issueRepo   issue.Repository
	historyRepo issue.HistoryRepository
	logger      logger.Interface
}

func NewUpdateIssueUseCase(
	issueRepo issue.Repository,
	historyRepo issue.HistoryRepository,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo:   issueRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*issue.Issue, error) {
	found, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if cmd.TaskName == "" {
		return nil, errors.NewValidationError("task name is required")
	}

	found.HospitalUnit = cmd.HospitalUnit
	found.Zone = cmd.Zone
	found.Priority = vo.ParsePriority(cmd.Priority)
	found.Category = cmd.Category
	found.TaskName = cmd.TaskName
	found.Description = sanitizer.Sanitize(cmd.Description)
	found.MainOwner = cmd.MainOwner
	found.CoOwners = cmd.CoOwners
	found.DueDate = cmd.DueDate
	found.StepsTaken = cmd.StepsTaken
	found.ReviewNotes = cmd.ReviewNotes

	now := time.Now()
	found.Touch(cmd.ActorName, now)

	if err := uc.issueRepo.Update(ctx, found); err != nil {
		uc.logger.Errorw("failed to update issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	entry := &issue.HistoryEntry{
		User:      cmd.ActorName,
		Action:    "updated the task.",
		Timestamp: utils.FormatTimestamp(now),
	}
	if err := uc.historyRepo.Add(ctx, found.ID, entry); err != nil {
		uc.logger.Errorw("failed to record issue history", "issue_id", found.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue updated", "issue_id", found.ID, "actor", cmd.ActorName)
	return found, nil
}
