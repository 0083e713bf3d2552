package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func TestCommentRepository_IDsRestartPerIssue(t *testing.T) {
	store := flatfile.NewStore(t.TempDir())
	repo := NewCommentRepository(store)
	ctx := context.Background()

	c1 := &issue.Comment{Text: "first", AuthorName: "Asha"}
	c2 := &issue.Comment{Text: "second", AuthorName: "Ravi"}
	require.NoError(t, repo.Add(ctx, "7", c1))
	require.NoError(t, repo.Add(ctx, "7", c2))
	assert.Equal(t, "1", c1.ID)
	assert.Equal(t, "2", c2.ID)

	other := &issue.Comment{Text: "elsewhere", AuthorName: "Meera"}
	require.NoError(t, repo.Add(ctx, "8", other))
	assert.Equal(t, "1", other.ID)

	comments, err := repo.ListByIssue(ctx, "7")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
}

func TestHistoryRepository_RoundTrip(t *testing.T) {
	store := flatfile.NewStore(t.TempDir())
	repo := NewHistoryRepository(store)
	ctx := context.Background()

	e := &issue.HistoryEntry{User: "Asha", Action: "Created the issue", Timestamp: "2026-08-01T09:00:00.000000"}
	require.NoError(t, repo.Add(ctx, "3", e))

	entries, err := repo.ListByIssue(ctx, "3")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Created the issue", entries[0].Action)
	assert.Equal(t, "1", entries[0].ID)
}

func TestAttachmentRepository_GetAndRemove(t *testing.T) {
	store := flatfile.NewStore(t.TempDir())
	repo := NewAttachmentRepository(store)
	ctx := context.Background()

	a := &issue.Attachment{FileName: "scan.pdf", UploadedBy: "Asha", Timestamp: "2026-08-01T09:00:00.000000"}
	require.NoError(t, repo.Add(ctx, "5", a))

	got, err := repo.GetByID(ctx, "5", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "scan.pdf", got.FileName)

	require.NoError(t, repo.Remove(ctx, "5", a.ID))

	_, err = repo.GetByID(ctx, "5", a.ID)
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Remove(ctx, "5", a.ID)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAttachmentRepository_ListEmptyIssue(t *testing.T) {
	store := flatfile.NewStore(t.TempDir())
	repo := NewAttachmentRepository(store)

	attachments, err := repo.ListByIssue(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, attachments)
}
