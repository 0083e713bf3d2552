package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func TestCreateIssueUseCase_Execute(t *testing.T) {
	var saved *issue.Issue
	var historyEntry *issue.HistoryEntry

	mockRepo := &mockIssueRepo{
		saveFunc: func(ctx context.Context, i *issue.Issue) error {
			i.ID = "42"
			saved = i
			return nil
		},
	}
	mockHistory := &mockHistoryRepo{
		addFunc: func(ctx context.Context, issueID string, e *issue.HistoryEntry) error {
			assert.Equal(t, "42", issueID)
			historyEntry = e
			return nil
		},
	}

	uc := NewCreateIssueUseCase(mockRepo, mockHistory, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateIssueCommand{
		HospitalUnit: "City General",
		Zone:         "North",
		Priority:     "High",
		MainCategory: "IT",
		SubCategory:  "Network",
		TaskName:     "Wifi down",
		Description:  "AP offline <script>alert(1)</script>",
		MainOwner:    "Asha",
		CoOwners:     []string{"Ravi"},
		ActorName:    "Asha",
	})

	require.NoError(t, err)
	assert.Equal(t, "42", result.IssueID)
	assert.Equal(t, "Open", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, "IT: Network", saved.Category)
	assert.NotContains(t, saved.Description, "<script>")
	assert.Equal(t, "Asha", saved.CreatedBy)

	require.NotNil(t, historyEntry)
	assert.Equal(t, "created the task for City General.", historyEntry.Action)
}

func TestCreateIssueUseCase_CategoryComposition(t *testing.T) {
	tests := []struct {
		name string
		main string
		sub  string
		oth  string
		want string
	}{
		{"main only", "IT", "", "", "IT"},
		{"picker subcategory", "IT", "Network", "", "IT: Network"},
		{"free text wins", "IT", "Network", "Cabling", "IT: Cabling"},
		{"free text without picker", "IT", "", "Cabling", "IT: Cabling"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeCategory(tt.main, tt.sub, tt.oth))
		})
	}
}

func TestCreateIssueUseCase_ValidationFailure(t *testing.T) {
	uc := NewCreateIssueUseCase(&mockIssueRepo{}, &mockHistoryRepo{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateIssueCommand{
		HospitalUnit: "City General",
		MainCategory: "IT",
		ActorName:    "Asha",
	})
	assert.True(t, errors.IsValidationError(err))
}
