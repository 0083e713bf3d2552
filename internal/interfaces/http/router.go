// Package http wires the flat-file repositories, use cases and handlers into
// a gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "github.com/sanathkumar-crypto/issue-tracker/internal/application/admin/usecases"
	dashboardusecases "github.com/sanathkumar-crypto/issue-tracker/internal/application/dashboard/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/application/identity"
	issueusecases "github.com/sanathkumar-crypto/issue-tracker/internal/application/issue/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/auth"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/config"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/flatfile"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/repository"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/storage"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers"
	adminhandler "github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers/admin"
	issuehandler "github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/routes"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// Router holds the configured gin engine and the route dependencies.
type Router struct {
	engine *gin.Engine

	authRoutes      *routes.AuthRouteConfig
	issueRoutes     *routes.IssueRouteConfig
	dashboardRoutes *routes.DashboardRouteConfig
	profileRoutes   *routes.ProfileRouteConfig
	adminRoutes     *routes.AdminRouteConfig
}

// NewRouter builds the whole dependency graph from configuration.
func NewRouter(cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	store := flatfile.NewStore(cfg.Data.Dir)
	files := storage.NewAttachmentFiles(cfg.Data.Dir)

	issueRepo := repository.NewIssueRepository(store, files)
	commentRepo := repository.NewCommentRepository(store)
	historyRepo := repository.NewHistoryRepository(store)
	attachmentRepo := repository.NewAttachmentRepository(store)
	userRepo := repository.NewUserRepository(store)
	hospitalRepo := repository.NewHospitalRepository(store)
	teamRepo := repository.NewTeamRepository(store)
	categoryRepo := repository.NewCategoryRepository(cfg.Data.Dir)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	googleClient := auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
	})

	resolver := identity.NewResolver(userRepo, cfg.Auth.AdminEmails, log)
	emailLoginUC := identity.NewEmailLoginUseCase(resolver, jwtService, cfg.Auth.AllowedEmailDomain, log)
	googleLoginUC := identity.NewGoogleLoginUseCase(resolver, jwtService, googleClient, cfg.Auth.AllowedEmailDomain, log)
	profileUC := identity.NewProfileUseCase(userRepo, log)

	createIssueUC := issueusecases.NewCreateIssueUseCase(issueRepo, historyRepo, log)
	listIssuesUC := issueusecases.NewListIssuesUseCase(issueRepo, log)
	getIssueUC := issueusecases.NewGetIssueUseCase(issueRepo, commentRepo, historyRepo, attachmentRepo, userRepo, log)
	updateIssueUC := issueusecases.NewUpdateIssueUseCase(issueRepo, historyRepo, log)
	closeIssueUC := issueusecases.NewCloseIssueUseCase(issueRepo, log)
	addCommentUC := issueusecases.NewAddCommentUseCase(issueRepo, commentRepo, log)
	uploadAttachmentUC := issueusecases.NewUploadAttachmentUseCase(issueRepo, attachmentRepo, historyRepo, files, log)
	downloadAttachmentUC := issueusecases.NewDownloadAttachmentUseCase(files, log)
	deleteAttachmentUC := issueusecases.NewDeleteAttachmentUseCase(attachmentRepo, files, log)
	exportIssuesUC := issueusecases.NewExportIssuesUseCase(issueRepo, log)

	getStatsUC := dashboardusecases.NewGetStatsUseCase(issueRepo, log)

	categoryAdminUC := adminusecases.NewCategoryAdminUseCase(categoryRepo, log)
	hospitalAdminUC := adminusecases.NewHospitalAdminUseCase(hospitalRepo, log)
	teamAdminUC := adminusecases.NewTeamAdminUseCase(teamRepo, userRepo, log)
	setUserRoleUC := adminusecases.NewSetUserRoleUseCase(userRepo, log)
	overviewUC := adminusecases.NewOverviewUseCase(categoryRepo, hospitalRepo, teamRepo, userRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	identityMiddleware := middleware.NewIdentityMiddleware(resolver, log)

	authHandler := handlers.NewAuthHandler(emailLoginUC, googleLoginUC, log)
	profileHandler := handlers.NewProfileHandler(profileUC, log)
	dashboardHandler := handlers.NewDashboardHandler(getStatsUC, log)
	issueHandler := issuehandler.NewIssueHandler(
		createIssueUC, listIssuesUC, getIssueUC, updateIssueUC, closeIssueUC,
		addCommentUC, uploadAttachmentUC, downloadAttachmentUC, deleteAttachmentUC,
		exportIssuesUC, log,
	)
	adminHandler := adminhandler.NewAdminHandler(
		categoryAdminUC, hospitalAdminUC, teamAdminUC, setUserRoleUC, overviewUC, log,
	)

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine: engine,
		authRoutes: &routes.AuthRouteConfig{
			AuthHandler:    authHandler,
			AuthMiddleware: authMiddleware,
		},
		issueRoutes: &routes.IssueRouteConfig{
			IssueHandler:       issueHandler,
			AuthMiddleware:     authMiddleware,
			IdentityMiddleware: identityMiddleware,
		},
		dashboardRoutes: &routes.DashboardRouteConfig{
			DashboardHandler:   dashboardHandler,
			AuthMiddleware:     authMiddleware,
			IdentityMiddleware: identityMiddleware,
		},
		profileRoutes: &routes.ProfileRouteConfig{
			ProfileHandler:     profileHandler,
			AuthMiddleware:     authMiddleware,
			IdentityMiddleware: identityMiddleware,
		},
		adminRoutes: &routes.AdminRouteConfig{
			AdminHandler:       adminHandler,
			AuthMiddleware:     authMiddleware,
			IdentityMiddleware: identityMiddleware,
		},
	}
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, r.authRoutes)
	routes.SetupIssueRoutes(r.engine, r.issueRoutes)
	routes.SetupDashboardRoutes(r.engine, r.dashboardRoutes)
	routes.SetupProfileRoutes(r.engine, r.profileRoutes)
	routes.SetupAdminRoutes(r.engine, r.adminRoutes)
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
