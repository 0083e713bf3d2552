package routes

import (
	"github.com/gin-gonic/gin"

	issuehandler "github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
)

// IssueRouteConfig holds dependencies for issue routes.
type IssueRouteConfig struct {
	IssueHandler       *issuehandler.IssueHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupIssueRoutes configures issue, comment and attachment routes. Every
// route requires a signed-in user whose role has been reconciled against the
// admin allow-list.
func SetupIssueRoutes(engine *gin.Engine, cfg *IssueRouteConfig) {
	authed := cfg.AuthMiddleware.RequireAuth()
	reconciled := cfg.IdentityMiddleware.Reconcile()

	issues := engine.Group("/issues")
	issues.Use(authed, reconciled)
	{
		issues.GET("", cfg.IssueHandler.ListIssues)
		issues.POST("", cfg.IssueHandler.CreateIssue)
		issues.GET("/export", cfg.IssueHandler.ExportCSV)
		issues.GET("/:id", cfg.IssueHandler.GetIssue)
		issues.PUT("/:id", cfg.IssueHandler.UpdateIssue)
		issues.DELETE("/:id", cfg.IssueHandler.DeleteIssue)
		issues.POST("/:id/close", cfg.IssueHandler.CloseIssue)
		issues.POST("/:id/comments", cfg.IssueHandler.AddComment)
		issues.POST("/:id/attachments", cfg.IssueHandler.UploadAttachment)
		issues.DELETE("/:id/attachments/:attID", authorization.RequireAdmin(), cfg.IssueHandler.DeleteAttachment)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(authed, reconciled)
	{
		attachments.GET("/:id/:name", cfg.IssueHandler.DownloadAttachment)
	}
}
