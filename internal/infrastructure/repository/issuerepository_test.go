package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func newIssueRepo(t *testing.T) (*IssueRepository, *flatfile.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := flatfile.NewStore(dir)
	return NewIssueRepository(store, storage.NewAttachmentFiles(dir)), store, dir
}

func sampleIssue(task string) *issue.Issue {
	return &issue.Issue{
		HospitalUnit: "City General",
		Zone:         "North",
		Priority:     vo.PriorityHigh,
		Category:     "IT: Network",
		TaskName:     task,
		MainOwner:    "Asha",
		CoOwners:     []string{"Ravi", "Meera"},
		Status:       vo.StatusOpen,
		DateLogged:   "2026-08-01T09:00:00.000000",
		CreatedBy:    "Asha",
	}
}

func TestIssueRepository_SaveAssignsID(t *testing.T) {
	repo, _, _ := newIssueRepo(t)
	ctx := context.Background()

	first := sampleIssue("Wifi down")
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, "1", first.ID)

	second := sampleIssue("Printer jam")
	require.NoError(t, repo.Save(ctx, second))
	assert.Equal(t, "2", second.ID)
}

func TestIssueRepository_RoundTrip(t *testing.T) {
	repo, _, _ := newIssueRepo(t)
	ctx := context.Background()

	original := sampleIssue("Wifi down")
	original.Description = "AP offline on floor 2,\nneeds \"urgent\" restart"
	require.NoError(t, repo.Save(ctx, original))

	loaded, err := repo.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.TaskName, loaded.TaskName)
	assert.Equal(t, original.Description, loaded.Description)
	assert.Equal(t, []string{"Ravi", "Meera"}, loaded.CoOwners)
	assert.Equal(t, vo.PriorityHigh, loaded.Priority)
}

func TestIssueRepository_GetByID_NotFound(t *testing.T) {
	repo, _, _ := newIssueRepo(t)

	_, err := repo.GetByID(context.Background(), "99")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestIssueRepository_UpdateMovesRecordToEnd(t *testing.T) {
	repo, _, _ := newIssueRepo(t)
	ctx := context.Background()

	first := sampleIssue("Wifi down")
	second := sampleIssue("Printer jam")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	first.StepsTaken = "Replaced AP"
	require.NoError(t, repo.Update(ctx, first))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "Replaced AP", all[1].StepsTaken)
}

func TestIssueRepository_UpdateWithoutID(t *testing.T) {
	repo, _, _ := newIssueRepo(t)

	err := repo.Update(context.Background(), sampleIssue("No id"))
	assert.True(t, errors.IsValidationError(err))
}

func TestIssueRepository_MarkClosed(t *testing.T) {
	repo, _, _ := newIssueRepo(t)
	ctx := context.Background()

	a := sampleIssue("A")
	b := sampleIssue("B")
	c := sampleIssue("C")
	for _, i := range []*issue.Issue{a, b, c} {
		require.NoError(t, repo.Save(ctx, i))
	}

	require.NoError(t, repo.MarkClosed(ctx, []string{a.ID, c.ID}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	byID := map[string]*issue.Issue{}
	for _, i := range all {
		byID[i.ID] = i
	}
	assert.Equal(t, vo.StatusClosed, byID[a.ID].Status)
	assert.Equal(t, vo.StatusOpen, byID[b.ID].Status)
	assert.Equal(t, vo.StatusClosed, byID[c.ID].Status)
}

func TestIssueRepository_DeleteCascades(t *testing.T) {
	repo, store, dir := newIssueRepo(t)
	ctx := context.Background()

	i := sampleIssue("Doomed")
	require.NoError(t, repo.Save(ctx, i))

	comments := NewCommentRepository(store)
	require.NoError(t, comments.Add(ctx, i.ID, &issue.Comment{Text: "hi", AuthorName: "Asha"}))

	fileDir := filepath.Join(dir, "attachments", "files", i.ID)
	require.NoError(t, os.MkdirAll(fileDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fileDir, "report.txt"), []byte("x"), 0o644))

	require.NoError(t, repo.Delete(ctx, i.ID))

	_, err := repo.GetByID(ctx, i.ID)
	assert.True(t, errors.IsNotFoundError(err))

	left, err := comments.ListByIssue(ctx, i.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = os.Stat(fileDir)
	assert.True(t, os.IsNotExist(err))
}

func TestIssueRepository_DeleteMissing(t *testing.T) {
	repo, _, _ := newIssueRepo(t)

	err := repo.Delete(context.Background(), "404")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestIssueRepository_ExportCSV(t *testing.T) {
	repo, _, _ := newIssueRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleIssue("Wifi down")))

	data, err := repo.ExportCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,hospitalUnit,zone,priority,category,taskName"))
	assert.Contains(t, lines[1], "Wifi down")
}
