// Package issue holds the HTTP handlers for the issue surface: listing,
// detail, lifecycle, comments and attachments.
package issue

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/issue/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type IssueHandler struct {
	createUC           *usecases.CreateIssueUseCase
	listUC             *usecases.ListIssuesUseCase
	getUC              *usecases.GetIssueUseCase
	updateUC           *usecases.UpdateIssueUseCase
	closeUC            *usecases.CloseIssueUseCase
	addCommentUC       *usecases.AddCommentUseCase
	uploadAttachmentUC *usecases.UploadAttachmentUseCase
	downloadUC         *usecases.DownloadAttachmentUseCase
	deleteAttachmentUC *usecases.DeleteAttachmentUseCase
	exportUC           *usecases.ExportIssuesUseCase
	logger             logger.Interface
}

func NewIssueHandler(
	createUC *usecases.CreateIssueUseCase,
	listUC *usecases.ListIssuesUseCase,
	getUC *usecases.GetIssueUseCase,
	updateUC *usecases.UpdateIssueUseCase,
	closeUC *usecases.CloseIssueUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	uploadAttachmentUC *usecases.UploadAttachmentUseCase,
	downloadUC *usecases.DownloadAttachmentUseCase,
	deleteAttachmentUC *usecases.DeleteAttachmentUseCase,
	exportUC *usecases.ExportIssuesUseCase,
	logger logger.Interface,
) *IssueHandler {
	return &IssueHandler{
		createUC:           createUC,
		listUC:             listUC,
		getUC:              getUC,
		updateUC:           updateUC,
		closeUC:            closeUC,
		addCommentUC:       addCommentUC,
		uploadAttachmentUC: uploadAttachmentUC,
		downloadUC:         downloadUC,
		deleteAttachmentUC: deleteAttachmentUC,
		exportUC:           exportUC,
		logger:             logger,
	}
}

// CreateIssue handles POST /issues
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(c.GetString(constants.ContextKeyUserName)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateIssueResponse{
		IssueID:    result.IssueID,
		Status:     result.Status,
		DateLogged: result.DateLogged,
	}, "Issue created successfully")
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	query := usecases.ListIssuesQuery{
		Category:       c.Query("category"),
		Hospital:       c.Query("hospital"),
		Zone:           c.Query("zone"),
		Priority:       c.Query("priority"),
		Status:         c.Query("status"),
		Search:         c.Query("search"),
		MyTasks:        c.Query("my_tasks") == "true",
		ActorName:      c.GetString(constants.ContextKeyUserName),
		SortBy:         c.Query("sort_by"),
		SortDescending: c.DefaultQuery("sort_dir", "desc") == "desc",
		Page:           page,
	}

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toIssueResponses(result.Issues), result.Total, result.Page, result.PageSize)
}

// GetIssue handles GET /issues/:id
func (h *IssueHandler) GetIssue(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toIssueDetailResponse(result))
}

// UpdateIssue handles PUT /issues/:id
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id"), c.GetString(constants.ContextKeyUserName)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue updated successfully", toIssueResponse(updated))
}

// CloseIssue handles POST /issues/:id/close
func (h *IssueHandler) CloseIssue(c *gin.Context) {
	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseIssueCommand{
		IssueID:   c.Param("id"),
		ActorName: c.GetString(constants.ContextKeyUserName),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Issue closed successfully"
	if result.AlreadyClosed {
		message = "Issue is already closed"
	}
	utils.SuccessResponse(c, http.StatusOK, message, CloseIssueResponse{
		AlreadyClosed: result.AlreadyClosed,
		DateClosed:    result.DateClosed,
	})
}

// DeleteIssue handles DELETE /issues/:id. Deletion is administratively
// disabled; the route answers with a forbidden outcome without touching the
// repository.
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	utils.ErrorResponseWithError(c, errors.NewForbiddenError("issue deletion is disabled"))
}

// AddComment handles POST /issues/:id/comments
func (h *IssueHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	comment, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		IssueID:     c.Param("id"),
		Text:        req.Text,
		AuthorName:  c.GetString(constants.ContextKeyUserName),
		AuthorEmail: c.GetString(constants.ContextKeyUserEmail),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCommentResponse(comment), "Comment added")
}

// UploadAttachment handles POST /issues/:id/attachments
func (h *IssueHandler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("no file selected"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	attachment, err := h.uploadAttachmentUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		IssueID:   c.Param("id"),
		FileName:  fileHeader.Filename,
		Content:   file,
		ActorName: c.GetString(constants.ContextKeyUserName),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAttachmentResponse(attachment), "File uploaded successfully")
}

// DownloadAttachment handles GET /attachments/:id/:name
func (h *IssueHandler) DownloadAttachment(c *gin.Context) {
	rc, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		IssueID:  c.Param("id"),
		FileName: c.Param("name"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.Param("name")))
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", rc, nil)
}

// DeleteAttachment handles DELETE /issues/:id/attachments/:attID
func (h *IssueHandler) DeleteAttachment(c *gin.Context) {
	err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		IssueID:      c.Param("id"),
		AttachmentID: c.Param("attID"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ExportCSV handles GET /issues/export
func (h *IssueHandler) ExportCSV(c *gin.Context) {
	data, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="issues.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
