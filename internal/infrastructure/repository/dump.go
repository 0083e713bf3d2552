package repository

import (
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
)

// Dump is a full-collection export, keyed the way the collections are stored.
// Child collections (comments, history, attachments) are keyed by parent
// issue id. Record keys are the storage field names.
type Dump struct {
	Issues      []flatfile.Record            `json:"issues"`
	Users       []flatfile.Record            `json:"users"`
	Hospitals   []flatfile.Record            `json:"hospitals"`
	Team        []flatfile.Record            `json:"team"`
	Comments    map[string][]flatfile.Record `json:"comments"`
	History     map[string][]flatfile.Record `json:"history"`
	Attachments map[string][]flatfile.Record `json:"attachments"`
}

// ImportDump replaces every collection present in the dump. Collections the
// dump omits are left untouched. Record ids are taken as-is; the dump is
// trusted to be internally consistent.
func ImportDump(store *flatfile.Store, d *Dump) error {
	top := []struct {
		name    string
		records []flatfile.Record
		schema  flatfile.Schema
	}{
		{constants.CollectionIssues, d.Issues, issueSchema},
		{constants.CollectionUsers, d.Users, userSchema},
		{constants.CollectionHospitals, d.Hospitals, hospitalSchema},
		{constants.CollectionTeamMembers, d.Team, teamSchema},
	}
	for _, c := range top {
		if c.records == nil {
			continue
		}
		if err := store.WriteAll(c.name, c.records, c.schema); err != nil {
			return err
		}
	}

	children := []struct {
		dir    string
		byID   map[string][]flatfile.Record
		schema flatfile.Schema
	}{
		{constants.ChildDirComments, d.Comments, commentSchema},
		{constants.ChildDirHistory, d.History, historySchema},
		{constants.ChildDirAttachments, d.Attachments, attachmentSchema},
	}
	for _, c := range children {
		for issueID, records := range c.byID {
			if err := store.WriteAll(childCollection(c.dir, issueID), records, c.schema); err != nil {
				return err
			}
		}
	}
	return nil
}
