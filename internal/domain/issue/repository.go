package issue

import "context"

// Repository is the issue collection contract. Writes rewrite the whole
// collection; implementations serialize read-modify-write cycles.
type Repository interface {
	GetAll(ctx context.Context) ([]*Issue, error)
	GetByID(ctx context.Context, id string) (*Issue, error)

	// Save assigns the next numeric id and appends.
	Save(ctx context.Context, i *Issue) error

	// Update replaces the record keyed by id, preserving the id. The
	// updated record moves to the end of the collection.
	Update(ctx context.Context, i *Issue) error

	// MarkClosed sets status to Closed on every listed issue in one batch
	// rewrite. Used by the status-sync reconciliation pass.
	MarkClosed(ctx context.Context, ids []string) error

	// Delete removes the issue, its child collections and attachment
	// files. The exposed delete operation is administratively disabled;
	// the cascade is retained for data maintenance.
	Delete(ctx context.Context, id string) error

	// ExportCSV dumps the whole collection in the storage schema.
	ExportCSV(ctx context.Context) ([]byte, error)
}

// CommentRepository manages one issue's comment collection.
type CommentRepository interface {
	ListByIssue(ctx context.Context, issueID string) ([]*Comment, error)
	Add(ctx context.Context, issueID string, c *Comment) error
}

// HistoryRepository manages one issue's audit trail.
type HistoryRepository interface {
	ListByIssue(ctx context.Context, issueID string) ([]*HistoryEntry, error)
	Add(ctx context.Context, issueID string, h *HistoryEntry) error
}

// AttachmentRepository manages one issue's attachment metadata.
type AttachmentRepository interface {
	ListByIssue(ctx context.Context, issueID string) ([]*Attachment, error)
	Add(ctx context.Context, issueID string, a *Attachment) error
	GetByID(ctx context.Context, issueID, attachmentID string) (*Attachment, error)
	Remove(ctx context.Context, issueID, attachmentID string) error
}
