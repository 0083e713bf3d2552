// Package repository implements the domain repository contracts over the
// flat-file store: one typed wrapper per entity fixing its schema and key.
package repository

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	vo "github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue/valueobjects"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

// issueSchema is the storage schema of the issues collection. Field order is
// part of the on-disk format and of the CSV export.
var issueSchema = flatfile.Schema{
	"id", "hospitalUnit", "zone", "priority", "category", "taskName", "description",
	"mainOwner", "coOwners", "dueDate", "status", "dateLogged", "dateClosed",
	"createdBy", "lastModified", "lastModifiedBy", "resolvedBy", "stepsTaken", "reviewNotes",
}

type IssueRepository struct {
	store *flatfile.Store
	files *storage.AttachmentFiles
}

func NewIssueRepository(store *flatfile.Store, files *storage.AttachmentFiles) *IssueRepository {
	return &IssueRepository{store: store, files: files}
}

func (r *IssueRepository) GetAll(ctx context.Context) ([]*issue.Issue, error) {
	records, err := r.store.ReadAll(constants.CollectionIssues)
	if err != nil {
		return nil, err
	}
	issues := make([]*issue.Issue, 0, len(records))
	for _, rec := range records {
		issues = append(issues, issueFromRecord(rec))
	}
	return issues, nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id string) (*issue.Issue, error) {
	issues, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, i := range issues {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, errors.NewNotFoundError("issue not found", fmt.Sprintf("id %s", id))
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	rec := issueToRecord(i)
	delete(rec, "id")
	id, err := r.store.Upsert(constants.CollectionIssues, rec, "id", issueSchema)
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if i.ID == "" {
		return errors.NewValidationError("issue id is required")
	}
	_, err := r.store.Upsert(constants.CollectionIssues, issueToRecord(i), "id", issueSchema)
	return err
}

func (r *IssueRepository) MarkClosed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	toClose := make(map[string]bool, len(ids))
	for _, id := range ids {
		toClose[id] = true
	}
	return r.store.Mutate(constants.CollectionIssues, issueSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, rec := range records {
			if toClose[rec["id"]] {
				rec["status"] = vo.StatusClosed.String()
			}
		}
		return records, nil
	})
}

// SyncZones rewrites each issue's zone from the given hospital-to-zone map
// in one batch rewrite. Hospital names match case-insensitively; issues whose
// hospital is not in the map keep their current zone. Returns the number of
// issues changed. Not part of the domain contract; used by the maintenance
// CLI only.
func (r *IssueRepository) SyncZones(ctx context.Context, zoneByHospital map[string]string) (int, error) {
	normalized := make(map[string]string, len(zoneByHospital))
	for name, zone := range zoneByHospital {
		normalized[strings.ToLower(strings.TrimSpace(name))] = zone
	}

	changed := 0
	err := r.store.Mutate(constants.CollectionIssues, issueSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		for _, rec := range records {
			zone, ok := normalized[strings.ToLower(strings.TrimSpace(rec["hospitalUnit"]))]
			if ok && rec["zone"] != zone {
				rec["zone"] = zone
				changed++
			}
		}
		return records, nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// Delete removes the issue record, its child collections and its attachment
// files. Child cleanup failures do not roll back the record removal; the
// stores are independent.
func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	found := false
	err := r.store.Mutate(constants.CollectionIssues, issueSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec["id"] == id {
				found = true
				continue
			}
			kept = append(kept, rec)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.NewNotFoundError("issue not found", fmt.Sprintf("id %s", id))
	}

	for _, dir := range []string{constants.ChildDirComments, constants.ChildDirHistory, constants.ChildDirAttachments} {
		if err := r.store.Delete(childCollection(dir, id)); err != nil {
			return err
		}
	}
	return r.files.RemoveAll(id)
}

func (r *IssueRepository) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := r.store.ReadAll(constants.CollectionIssues)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := flatfile.Encode(&buf, records, issueSchema); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func issueFromRecord(rec flatfile.Record) *issue.Issue {
	return &issue.Issue{
		ID:             rec["id"],
		HospitalUnit:   rec["hospitalUnit"],
		Zone:           rec["zone"],
		Priority:       vo.Priority(rec["priority"]),
		Category:       rec["category"],
		TaskName:       rec["taskName"],
		Description:    rec["description"],
		MainOwner:      rec["mainOwner"],
		CoOwners:       splitCoOwners(rec["coOwners"]),
		DueDate:        rec["dueDate"],
		Status:         vo.Status(rec["status"]),
		DateLogged:     rec["dateLogged"],
		DateClosed:     rec["dateClosed"],
		CreatedBy:      rec["createdBy"],
		LastModified:   rec["lastModified"],
		LastModifiedBy: rec["lastModifiedBy"],
		ResolvedBy:     rec["resolvedBy"],
		StepsTaken:     rec["stepsTaken"],
		ReviewNotes:    rec["reviewNotes"],
	}
}

func issueToRecord(i *issue.Issue) flatfile.Record {
	return flatfile.Record{
		"id":             i.ID,
		"hospitalUnit":   i.HospitalUnit,
		"zone":           i.Zone,
		"priority":       i.Priority.String(),
		"category":       i.Category,
		"taskName":       i.TaskName,
		"description":    i.Description,
		"mainOwner":      i.MainOwner,
		"coOwners":       strings.Join(i.CoOwners, ","),
		"dueDate":        i.DueDate,
		"status":         i.Status.String(),
		"dateLogged":     i.DateLogged,
		"dateClosed":     i.DateClosed,
		"createdBy":      i.CreatedBy,
		"lastModified":   i.LastModified,
		"lastModifiedBy": i.LastModifiedBy,
		"resolvedBy":     i.ResolvedBy,
		"stepsTaken":     i.StepsTaken,
		"reviewNotes":    i.ReviewNotes,
	}
}

func splitCoOwners(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	owners := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			owners = append(owners, p)
		}
	}
	return owners
}

func childCollection(dir, issueID string) string {
	return dir + "/" + issueID
}
