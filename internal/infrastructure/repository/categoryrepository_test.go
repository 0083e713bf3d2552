package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/team"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

func TestCategoryRepository_EmptyCatalog(t *testing.T) {
	repo := NewCategoryRepository(t.TempDir())

	catalog, err := repo.Catalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCategoryRepository_AddRenameDelete(t *testing.T) {
	repo := NewCategoryRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "IT"))
	assert.True(t, errors.IsConflictError(repo.Add(ctx, "IT")))

	require.NoError(t, repo.AddSub(ctx, "IT", "Network"))
	require.NoError(t, repo.AddSub(ctx, "IT", "Hardware"))
	assert.True(t, errors.IsConflictError(repo.AddSub(ctx, "IT", "Network")))
	assert.True(t, errors.IsNotFoundError(repo.AddSub(ctx, "Facilities", "Plumbing")))

	require.NoError(t, repo.Rename(ctx, "IT", "Technology"))
	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Network", "Hardware"}, catalog["Technology"])
	_, hasOld := catalog["IT"]
	assert.False(t, hasOld)

	require.NoError(t, repo.Delete(ctx, "Technology"))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, "Technology")))
}

func TestCategoryRepository_SubcategoryOrderPreserved(t *testing.T) {
	repo := NewCategoryRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "Clinical"))
	for _, sub := range []string{"Monitors", "Ventilators", "Pumps"} {
		require.NoError(t, repo.AddSub(ctx, "Clinical", sub))
	}

	require.NoError(t, repo.RenameSub(ctx, "Clinical", "Ventilators", "Vents"))
	require.NoError(t, repo.DeleteSub(ctx, "Clinical", "Monitors"))

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vents", "Pumps"}, catalog["Clinical"])

	assert.True(t, errors.IsNotFoundError(repo.RenameSub(ctx, "Clinical", "Gone", "X")))
	assert.True(t, errors.IsNotFoundError(repo.DeleteSub(ctx, "Clinical", "Gone")))
}

func TestCategoryRepository_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewCategoryRepository(dir)
	require.NoError(t, first.Add(ctx, "IT"))
	require.NoError(t, first.AddSub(ctx, "IT", "Network"))

	second := NewCategoryRepository(dir)
	catalog, err := second.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Network"}, catalog["IT"])
}

func TestTeamRepository_AddAndRemove(t *testing.T) {
	repo := NewTeamRepository(flatfile.NewStore(t.TempDir()))
	ctx := context.Background()

	m := &team.Member{UID: "4", Name: "Ravi", Email: "ravi@cloudphysician.net"}
	require.NoError(t, repo.Add(ctx, m))

	dup := &team.Member{UID: "9", Name: "Ravi Again", Email: "RAVI@cloudphysician.net"}
	assert.True(t, errors.IsConflictError(repo.Add(ctx, dup)))

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "4", members[0].UID)

	require.NoError(t, repo.RemoveByUID(ctx, "4"))
	assert.True(t, errors.IsNotFoundError(repo.RemoveByUID(ctx, "4")))
}
