package issue

// Child records are owned exclusively by one parent issue and live in
// per-issue collections; their ids are scoped to that parent.

// Comment is a discussion entry on an issue.
type Comment struct {
	ID          string
	Text        string
	AuthorName  string
	AuthorEmail string
	Timestamp   string
}

// HistoryEntry is one line of an issue's audit trail.
type HistoryEntry struct {
	ID        string
	User      string
	Action    string
	Timestamp string
}

// Attachment is file metadata; the bytes live under the attachment files
// area keyed by issue id and file name.
type Attachment struct {
	ID          string
	FileName    string
	DownloadURL string
	UploadedBy  string
	Timestamp   string
}
