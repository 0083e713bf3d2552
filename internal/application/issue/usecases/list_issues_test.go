package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
)

func openIssue(id, task string) *issue.Issue {
	return &issue.Issue{
		ID:           id,
		TaskName:     task,
		HospitalUnit: "City General",
		Category:     "IT",
		Status:       vo.StatusOpen,
		DateLogged:   fmt.Sprintf("2026-08-%02dT10:00:00.000000", 1+len(id)%27),
	}
}

func TestListIssuesUseCase_Pagination(t *testing.T) {
	var all []*issue.Issue
	for i := 1; i <= 30; i++ {
		all = append(all, openIssue(fmt.Sprintf("%d", i), fmt.Sprintf("Task %d", i)))
	}
	mockRepo := &mockIssueRepo{
		getAllFunc: func(ctx context.Context) ([]*issue.Issue, error) { return all, nil },
	}
	uc := NewListIssuesUseCase(mockRepo, &mockLogger{})

	page2, err := uc.Execute(context.Background(), ListIssuesQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Issues, 5)
	assert.Equal(t, 30, page2.Total)
	assert.Equal(t, 2, page2.TotalPages)

	page3, err := uc.Execute(context.Background(), ListIssuesQuery{Page: 3})
	require.NoError(t, err)
	assert.Empty(t, page3.Issues)
}

func TestListIssuesUseCase_StatusSyncPersists(t *testing.T) {
	stale := &issue.Issue{
		ID:           "1",
		TaskName:     "Stale",
		HospitalUnit: "City General",
		Category:     "IT",
		Status:       vo.StatusOpen,
		DateClosed:   "2026-08-10T09:00:00.000000",
		DateLogged:   "2026-08-01T09:00:00.000000",
	}
	clean := openIssue("2", "Clean")

	var persisted []string
	mockRepo := &mockIssueRepo{
		getAllFunc: func(ctx context.Context) ([]*issue.Issue, error) {
			return []*issue.Issue{stale, clean}, nil
		},
		markClosedFunc: func(ctx context.Context, ids []string) error {
			persisted = ids
			return nil
		},
	}
	uc := NewListIssuesUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListIssuesQuery{})
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, persisted)
	for _, i := range result.Issues {
		if i.ID == "1" {
			assert.Equal(t, vo.StatusClosed, i.Status)
		}
	}
}

func TestListIssuesUseCase_NoSyncNoRewrite(t *testing.T) {
	mockRepo := &mockIssueRepo{
		getAllFunc: func(ctx context.Context) ([]*issue.Issue, error) {
			return []*issue.Issue{openIssue("1", "Clean")}, nil
		},
		markClosedFunc: func(ctx context.Context, ids []string) error {
			t.Fatal("unexpected batch rewrite")
			return nil
		},
	}
	uc := NewListIssuesUseCase(mockRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListIssuesQuery{})
	require.NoError(t, err)
}

func TestListIssuesUseCase_MyTasks(t *testing.T) {
	mine := openIssue("1", "Mine")
	mine.MainOwner = "Asha"
	closedMine := openIssue("2", "Closed mine")
	closedMine.MainOwner = "Asha"
	closedMine.DateClosed = "2026-08-10T09:00:00.000000"
	closedMine.Status = vo.StatusClosed
	other := openIssue("3", "Someone else")
	other.MainOwner = "Ravi"

	mockRepo := &mockIssueRepo{
		getAllFunc: func(ctx context.Context) ([]*issue.Issue, error) {
			return []*issue.Issue{mine, closedMine, other}, nil
		},
	}
	uc := NewListIssuesUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListIssuesQuery{MyTasks: true, ActorName: "Asha"})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "1", result.Issues[0].ID)
}
