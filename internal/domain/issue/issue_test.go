package issue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func TestNewIssue(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)

	i, err := NewIssue("General Hospital", "North", "Equipment: Monitors", "Fix bed 4 monitor",
		"screen flickers", "Asha", []string{"Ravi"}, vo.PriorityHigh, "2024-03-20", "Asha", now)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen, i.Status)
	assert.Empty(t, i.DateClosed)
	assert.Equal(t, "2024-03-10T09:30:00", i.DateLogged)
	assert.Equal(t, i.DateLogged, i.LastModified)
	assert.Equal(t, "Asha", i.CreatedBy)
	assert.False(t, i.IsClosed())
}

func TestNewIssue_ValidationErrors(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name         string
		hospitalUnit string
		category     string
		taskName     string
	}{
		{"missing task name", "H", "C", ""},
		{"missing hospital unit", "", "C", "T"},
		{"missing category", "H", "", "T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIssue(tt.hospitalUnit, "", tt.category, tt.taskName,
				"", "", nil, vo.PriorityMedium, "", "someone", now)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestIssue_Close(t *testing.T) {
	now := time.Date(2024, 3, 12, 18, 0, 0, 0, time.Local)
	i := &Issue{Status: vo.StatusOpen}

	closed := i.Close("Ravi", now)
	require.True(t, closed)
	assert.Equal(t, vo.StatusClosed, i.Status)
	assert.NotEmpty(t, i.DateClosed)
	assert.Equal(t, "Ravi", i.ResolvedBy)
	assert.Equal(t, "Ravi", i.LastModifiedBy)

	// Closing again is a no-op.
	before := i.DateClosed
	assert.False(t, i.Close("someone else", now.Add(time.Hour)))
	assert.Equal(t, before, i.DateClosed)
	assert.Equal(t, "Ravi", i.ResolvedBy)
}

func TestIssue_NeedsStatusSync(t *testing.T) {
	assert.False(t, (&Issue{Status: vo.StatusOpen}).NeedsStatusSync())
	assert.False(t, (&Issue{Status: vo.StatusClosed, DateClosed: "2024-01-01T00:00:00"}).NeedsStatusSync())
	assert.True(t, (&Issue{Status: vo.StatusOpen, DateClosed: "2024-01-01T00:00:00"}).NeedsStatusSync())
}

func TestIssue_IsOwnedBy(t *testing.T) {
	i := &Issue{MainOwner: "Asha", CoOwners: []string{"Ravi", "Meena"}}

	assert.True(t, i.IsOwnedBy("Asha"))
	assert.True(t, i.IsOwnedBy("Meena"))
	assert.False(t, i.IsOwnedBy("Kiran"))
	assert.False(t, i.IsOwnedBy(""))
}

func TestIssue_ClosedAt_MalformedTimestamp(t *testing.T) {
	i := &Issue{DateClosed: "not-a-date"}
	_, ok := i.ClosedAt()
	assert.False(t, ok)
}
