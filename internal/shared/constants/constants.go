package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Issue listing page size, fixed by the UI
	IssuesPageSize = 25

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRole  = "user_role"

	// Collection names (one CSV file each under the data directory)
	CollectionIssues      = "issues"
	CollectionUsers       = "users"
	CollectionHospitals   = "hospitals"
	CollectionTeamMembers = "team_members"

	// Child collection directories, one CSV file per issue
	ChildDirComments    = "comments"
	ChildDirHistory     = "history"
	ChildDirAttachments = "attachments"

	// Attachment bytes live under attachments/files/<issueID>/<name>
	AttachmentFilesDir = "attachments/files"
)
