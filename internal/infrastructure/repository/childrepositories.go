package repository

import (
	"context"
	"fmt"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
)

// Child collections live in per-issue files, so record ids restart at 1 for
// every issue.

var commentSchema = flatfile.Schema{"id", "text", "authorName", "authorEmail", "timestamp"}

type CommentRepository struct {
	store *flatfile.Store
}

func NewCommentRepository(store *flatfile.Store) *CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	records, err := r.store.ReadAll(childCollection(constants.ChildDirComments, issueID))
	if err != nil {
		return nil, err
	}
	comments := make([]*issue.Comment, 0, len(records))
	for _, rec := range records {
		comments = append(comments, &issue.Comment{
			ID:          rec["id"],
			Text:        rec["text"],
			AuthorName:  rec["authorName"],
			AuthorEmail: rec["authorEmail"],
			Timestamp:   rec["timestamp"],
		})
	}
	return comments, nil
}

func (r *CommentRepository) Add(ctx context.Context, issueID string, c *issue.Comment) error {
	id, err := r.store.Upsert(childCollection(constants.ChildDirComments, issueID), flatfile.Record{
		"text":        c.Text,
		"authorName":  c.AuthorName,
		"authorEmail": c.AuthorEmail,
		"timestamp":   c.Timestamp,
	}, "id", commentSchema)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

var historySchema = flatfile.Schema{"id", "user", "action", "timestamp"}

type HistoryRepository struct {
	store *flatfile.Store
}

func NewHistoryRepository(store *flatfile.Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

func (r *HistoryRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.HistoryEntry, error) {
	records, err := r.store.ReadAll(childCollection(constants.ChildDirHistory, issueID))
	if err != nil {
		return nil, err
	}
	entries := make([]*issue.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, &issue.HistoryEntry{
			ID:        rec["id"],
			User:      rec["user"],
			Action:    rec["action"],
			Timestamp: rec["timestamp"],
		})
	}
	return entries, nil
}

func (r *HistoryRepository) Add(ctx context.Context, issueID string, e *issue.HistoryEntry) error {
	id, err := r.store.Upsert(childCollection(constants.ChildDirHistory, issueID), flatfile.Record{
		"user":      e.User,
		"action":    e.Action,
		"timestamp": e.Timestamp,
	}, "id", historySchema)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

var attachmentSchema = flatfile.Schema{"id", "fileName", "downloadURL", "uploadedBy", "timestamp"}

type AttachmentRepository struct {
	store *flatfile.Store
}

func NewAttachmentRepository(store *flatfile.Store) *AttachmentRepository {
	return &AttachmentRepository{store: store}
}

func (r *AttachmentRepository) ListByIssue(ctx context.Context, issueID string) ([]*issue.Attachment, error) {
	records, err := r.store.ReadAll(childCollection(constants.ChildDirAttachments, issueID))
	if err != nil {
		return nil, err
	}
	attachments := make([]*issue.Attachment, 0, len(records))
	for _, rec := range records {
		attachments = append(attachments, attachmentFromRecord(rec))
	}
	return attachments, nil
}

func (r *AttachmentRepository) Add(ctx context.Context, issueID string, a *issue.Attachment) error {
	id, err := r.store.Upsert(childCollection(constants.ChildDirAttachments, issueID), flatfile.Record{
		"fileName":    a.FileName,
		"downloadURL": a.DownloadURL,
		"uploadedBy":  a.UploadedBy,
		"timestamp":   a.Timestamp,
	}, "id", attachmentSchema)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, issueID, attachmentID string) (*issue.Attachment, error) {
	records, err := r.store.ReadAll(childCollection(constants.ChildDirAttachments, issueID))
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec["id"] == attachmentID {
			return attachmentFromRecord(rec), nil
		}
	}
	return nil, errors.NewNotFoundError("attachment not found", fmt.Sprintf("id %s", attachmentID))
}

func (r *AttachmentRepository) Remove(ctx context.Context, issueID, attachmentID string) error {
	found := false
	err := r.store.Mutate(childCollection(constants.ChildDirAttachments, issueID), attachmentSchema, func(records []flatfile.Record) ([]flatfile.Record, error) {
		kept := records[:0]
		for _, rec := range records {
			if rec["id"] == attachmentID {
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
		return errors.NewNotFoundError("attachment not found", fmt.Sprintf("id %s", attachmentID))
	}
	return nil
}

func attachmentFromRecord(rec flatfile.Record) *issue.Attachment {
	return &issue.Attachment{
		ID:          rec["id"],
		FileName:    rec["fileName"],
		DownloadURL: rec["downloadURL"],
		UploadedBy:  rec["uploadedBy"],
		Timestamp:   rec["timestamp"],
	}
}
