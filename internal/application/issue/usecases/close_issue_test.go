package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func TestCloseIssueUseCase_ClosesOpenIssue(t *testing.T) {
	open := openIssue("1", "Wifi down")

	var updated *issue.Issue
	mockRepo := &mockIssueRepo{
		getByIDFunc: func(ctx context.Context, id string) (*issue.Issue, error) { return open, nil },
		updateFunc: func(ctx context.Context, i *issue.Issue) error {
			updated = i
			return nil
		},
	}
	uc := NewCloseIssueUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CloseIssueCommand{IssueID: "1", ActorName: "Asha"})
	require.NoError(t, err)
	assert.False(t, result.AlreadyClosed)
	assert.NotEmpty(t, result.DateClosed)

	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusClosed, updated.Status)
	assert.Equal(t, "Asha", updated.ResolvedBy)
}

func TestCloseIssueUseCase_AlreadyClosedIsNoOp(t *testing.T) {
	closed := openIssue("1", "Wifi down")
	closed.DateClosed = "2026-08-10T09:00:00.000000"
	closed.Status = vo.StatusClosed

	mockRepo := &mockIssueRepo{
		getByIDFunc: func(ctx context.Context, id string) (*issue.Issue, error) { return closed, nil },
		updateFunc: func(ctx context.Context, i *issue.Issue) error {
			t.Fatal("unexpected update")
			return nil
		},
	}
	uc := NewCloseIssueUseCase(mockRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CloseIssueCommand{IssueID: "1", ActorName: "Ravi"})
	require.NoError(t, err)
	assert.True(t, result.AlreadyClosed)
	assert.Equal(t, "2026-08-10T09:00:00.000000", result.DateClosed)
}

func TestCloseIssueUseCase_NotFound(t *testing.T) {
	mockRepo := &mockIssueRepo{
		getByIDFunc: func(ctx context.Context, id string) (*issue.Issue, error) {
			return nil, errors.NewNotFoundError("issue not found")
		},
	}
	uc := NewCloseIssueUseCase(mockRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CloseIssueCommand{IssueID: "99", ActorName: "Asha"})
	assert.True(t, errors.IsNotFoundError(err))
}
