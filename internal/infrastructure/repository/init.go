package repository

import (
	"os"
	"path/filepath"

	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
)

// InitCollections creates the data directory layout: every top-level
// collection as an empty file with its header row, plus the child collection
// directories and the attachment file store. Existing collection files are
// left untouched.
func InitCollections(store *flatfile.Store) error {
	dirs := []string{
		constants.ChildDirComments,
		constants.ChildDirHistory,
		constants.ChildDirAttachments,
		constants.AttachmentFilesDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(store.Dir(), dir), 0o755); err != nil {
			return err
		}
	}

	collections := []struct {
		name   string
		schema flatfile.Schema
	}{
		{constants.CollectionIssues, issueSchema},
		{constants.CollectionUsers, userSchema},
		{constants.CollectionHospitals, hospitalSchema},
		{constants.CollectionTeamMembers, teamSchema},
	}
	for _, c := range collections {
		path := filepath.Join(store.Dir(), c.name+".csv")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := store.WriteAll(c.name, nil, c.schema); err != nil {
			return err
		}
	}
	return nil
}
