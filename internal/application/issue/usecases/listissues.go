package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type ListIssuesQuery struct {
	Category string
	Hospital string
	Zone     string
	Priority string
	Status   string
	Search   string

	// MyTasks narrows to open issues owned or co-owned by the actor.
	MyTasks   bool
	ActorName string

	SortBy         string
	SortDescending bool
	Page           int
}

type ListIssuesResult struct {
	Issues     []*issue.Issue
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type ListIssuesUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.Repository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{issueRepo: issueRepo, logger: logger}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	issues, err := uc.issueRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load issues", "error", err)
		return nil, err
	}

	if err := uc.syncStatuses(ctx, issues); err != nil {
		return nil, err
	}

	filter := issue.Filter{
		Category: query.Category,
		Hospital: query.Hospital,
		Zone:     query.Zone,
		Priority: query.Priority,
		Status:   query.Status,
		Search:   query.Search,
	}
	if query.MyTasks {
		filter.OwnerName = query.ActorName
	}
	filtered := issue.ApplyFilter(issues, filter)

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "dateLogged"
	}
	issue.SortIssues(filtered, sortBy, query.SortDescending)

	page := query.Page
	if page < 1 {
		page = 1
	}
	start, end := utils.ApplyPagination(len(filtered), page, constants.IssuesPageSize)

	return &ListIssuesResult{
		Issues:     filtered[start:end],
		Total:      len(filtered),
		Page:       page,
		PageSize:   constants.IssuesPageSize,
		TotalPages: utils.TotalPages(len(filtered), constants.IssuesPageSize),
	}, nil
}

// syncStatuses repairs the redundant status column wherever dateClosed says
// the issue is closed, fixing the loaded entities in memory and persisting
// the correction in one batch rewrite.
func (uc *ListIssuesUseCase) syncStatuses(ctx context.Context, issues []*issue.Issue) error {
	var stale []string
	for _, i := range issues {
		if i.NeedsStatusSync() {
			stale = append(stale, i.ID)
			i.Status = vo.StatusClosed
		}
	}
	if len(stale) == 0 {
		return nil
	}

	uc.logger.Infow("reconciling stale issue statuses", "count", len(stale))
	if err := uc.issueRepo.MarkClosed(ctx, stale); err != nil {
		uc.logger.Errorw("failed to persist status reconciliation", "error", err)
		return err
	}
	return nil
}
