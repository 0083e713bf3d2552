package usecases

import (
	"context"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockIssueRepo struct {
	getAllFunc     func(ctx context.Context) ([]*issue.Issue, error)
	getByIDFunc    func(ctx context.Context, id string) (*issue.Issue, error)
	saveFunc       func(ctx context.Context, i *issue.Issue) error
	updateFunc     func(ctx context.Context, i *issue.Issue) error
	markClosedFunc func(ctx context.Context, ids []string) error
	deleteFunc     func(ctx context.Context, id string) error
	exportFunc     func(ctx context.Context) ([]byte, error)
}

func (m *mockIssueRepo) GetAll(ctx context.Context) ([]*issue.Issue, error) {
	return m.getAllFunc(ctx)
}

func (m *mockIssueRepo) GetByID(ctx context.Context, id string) (*issue.Issue, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockIssueRepo) Save(ctx context.Context, i *issue.Issue) error {
	return m.saveFunc(ctx, i)
}

func (m *mockIssueRepo) Update(ctx context.Context, i *issue.Issue) error {
	return m.updateFunc(ctx, i)
}

func (m *mockIssueRepo) MarkClosed(ctx context.Context, ids []string) error {
	return m.markClosedFunc(ctx, ids)
}

func (m *mockIssueRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockIssueRepo) ExportCSV(ctx context.Context) ([]byte, error) {
	return m.exportFunc(ctx)
}

type mockCommentRepo struct {
	listFunc func(ctx context.Context, issueID string) ([]*issue.Comment, error)
	addFunc  func(ctx context.Context, issueID string, c *issue.Comment) error
}

func (m *mockCommentRepo) ListByIssue(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	return m.listFunc(ctx, issueID)
}

func (m *mockCommentRepo) Add(ctx context.Context, issueID string, c *issue.Comment) error {
	return m.addFunc(ctx, issueID, c)
}

type mockHistoryRepo struct {
	listFunc func(ctx context.Context, issueID string) ([]*issue.HistoryEntry, error)
	addFunc  func(ctx context.Context, issueID string, e *issue.HistoryEntry) error
}

func (m *mockHistoryRepo) ListByIssue(ctx context.Context, issueID string) ([]*issue.HistoryEntry, error) {
	return m.listFunc(ctx, issueID)
}

func (m *mockHistoryRepo) Add(ctx context.Context, issueID string, e *issue.HistoryEntry) error {
	return m.addFunc(ctx, issueID, e)
}

type mockAttachmentRepo struct {
	listFunc    func(ctx context.Context, issueID string) ([]*issue.Attachment, error)
	addFunc     func(ctx context.Context, issueID string, a *issue.Attachment) error
	getByIDFunc func(ctx context.Context, issueID, attachmentID string) (*issue.Attachment, error)
	removeFunc  func(ctx context.Context, issueID, attachmentID string) error
}

func (m *mockAttachmentRepo) ListByIssue(ctx context.Context, issueID string) ([]*issue.Attachment, error) {
	return m.listFunc(ctx, issueID)
}

func (m *mockAttachmentRepo) Add(ctx context.Context, issueID string, a *issue.Attachment) error {
	return m.addFunc(ctx, issueID, a)
}

func (m *mockAttachmentRepo) GetByID(ctx context.Context, issueID, attachmentID string) (*issue.Attachment, error) {
	return m.getByIDFunc(ctx, issueID, attachmentID)
}

func (m *mockAttachmentRepo) Remove(ctx context.Context, issueID, attachmentID string) error {
	return m.removeFunc(ctx, issueID, attachmentID)
}

type mockUserRepo struct {
	listFunc       func(ctx context.Context) ([]*user.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	getByIDFunc    func(ctx context.Context, id string) (*user.User, error)
	upsertFunc     func(ctx context.Context, u *user.User) error
}

func (m *mockUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return m.listFunc(ctx)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) Upsert(ctx context.Context, u *user.User) error {
	return m.upsertFunc(ctx, u)
}
