package issue

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/issue/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

type testLogger struct{}

func (testLogger) Debug(msg string, args ...any)                   {}
func (testLogger) Info(msg string, args ...any)                    {}
func (testLogger) Warn(msg string, args ...any)                    {}
func (testLogger) Error(msg string, args ...any)                   {}
func (l testLogger) With(args ...any) logger.Interface             { return l }
func (l testLogger) Named(name string) logger.Interface            { return l }
func (testLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (testLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (testLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (testLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store := flatfile.NewStore(dir)
	files := storage.NewAttachmentFiles(dir)
	log := testLogger{}

	issueRepo := repository.NewIssueRepository(store, files)
	commentRepo := repository.NewCommentRepository(store)
	historyRepo := repository.NewHistoryRepository(store)
	attachmentRepo := repository.NewAttachmentRepository(store)
	userRepo := repository.NewUserRepository(store)

	handler := NewIssueHandler(
		usecases.NewCreateIssueUseCase(issueRepo, historyRepo, log),
		usecases.NewListIssuesUseCase(issueRepo, log),
		usecases.NewGetIssueUseCase(issueRepo, commentRepo, historyRepo, attachmentRepo, userRepo, log),
		usecases.NewUpdateIssueUseCase(issueRepo, historyRepo, log),
		usecases.NewCloseIssueUseCase(issueRepo, log),
		usecases.NewAddCommentUseCase(issueRepo, commentRepo, log),
		usecases.NewUploadAttachmentUseCase(issueRepo, attachmentRepo, historyRepo, files, log),
		usecases.NewDownloadAttachmentUseCase(files, log),
		usecases.NewDeleteAttachmentUseCase(attachmentRepo, files, log),
		usecases.NewExportIssuesUseCase(issueRepo, log),
		log,
	)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, "1")
		c.Set(constants.ContextKeyUserEmail, "ravi.menon@cloudphysician.net")
		c.Set(constants.ContextKeyUserName, "Ravi Menon")
		c.Set(constants.ContextKeyUserRole, "member")
	})

	issues := engine.Group("/issues")
	{
		issues.GET("", handler.ListIssues)
		issues.POST("", handler.CreateIssue)
		issues.GET("/export", handler.ExportCSV)
		issues.GET("/:id", handler.GetIssue)
		issues.PUT("/:id", handler.UpdateIssue)
		issues.DELETE("/:id", handler.DeleteIssue)
		issues.POST("/:id/close", handler.CloseIssue)
		issues.POST("/:id/comments", handler.AddComment)
		issues.POST("/:id/attachments", handler.UploadAttachment)
	}
	engine.GET("/attachments/:id/:name", handler.DownloadAttachment)

	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestIssueHandler_CreateAndGet(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/issues", map[string]any{
		"hospitalUnit": "City General",
		"zone":         "South",
		"priority":     "High",
		"mainCategory": "Equipment",
		"subCategory":  "Monitor",
		"taskName":     "Monitor offline",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Success bool                `json:"success"`
		Data    CreateIssueResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "1", created.Data.IssueID)
	assert.Equal(t, "Open", created.Data.Status)

	req := httptest.NewRequest(http.MethodGet, "/issues/1", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		Data IssueDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Monitor offline", detail.Data.Issue.TaskName)
	assert.Equal(t, "Equipment: Monitor", detail.Data.Issue.Category)
	require.Len(t, detail.Data.History, 1)
	assert.Equal(t, "created the task for City General.", detail.Data.History[0].Action)
}

func TestIssueHandler_CreateRejectsMissingFields(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/issues", map[string]any{
		"taskName": "No hospital given",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hospitalUnit")
}

func TestIssueHandler_ListEnvelope(t *testing.T) {
	engine := newTestEngine(t)

	for _, name := range []string{"First task", "Second task"} {
		w := postJSON(t, engine, "/issues", map[string]any{
			"hospitalUnit": "Lakeview",
			"mainCategory": "IT",
			"taskName":     name,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/issues?hospital=Lakeview", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Items []IssueResponse `json:"items"`
		Total int             `json:"total"`
		Page  int             `json:"page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Len(t, list.Items, 2)
}

func TestIssueHandler_CloseTwiceIsInformational(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/issues", map[string]any{
		"hospitalUnit": "City General",
		"mainCategory": "Equipment",
		"taskName":     "Close me",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	first := postJSON(t, engine, "/issues/1/close", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "Issue closed successfully")

	second := postJSON(t, engine, "/issues/1/close", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "already closed")
}

func TestIssueHandler_DeleteIsDisabled(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodDelete, "/issues/1", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIssueHandler_AttachmentRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/issues", map[string]any{
		"hospitalUnit": "City General",
		"mainCategory": "Equipment",
		"taskName":     "With attachment",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("checked the monitor cabling"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/issues/1/attachments", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var uploaded struct {
		Data AttachmentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))
	assert.Equal(t, "notes.txt", uploaded.Data.FileName)
	assert.Equal(t, "/attachments/1/notes.txt", uploaded.Data.DownloadURL)

	dl := httptest.NewRequest(http.MethodGet, "/attachments/1/notes.txt", nil)
	dlRec := httptest.NewRecorder()
	engine.ServeHTTP(dlRec, dl)
	require.Equal(t, http.StatusOK, dlRec.Code)
	assert.Equal(t, "checked the monitor cabling", dlRec.Body.String())
}

func TestIssueHandler_ExportIsCSV(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/issues", map[string]any{
		"hospitalUnit": "City General",
		"mainCategory": "Equipment",
		"taskName":     "Exported",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/issues/export", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,hospitalUnit,zone"))
}
