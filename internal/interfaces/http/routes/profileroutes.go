package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
)

// ProfileRouteConfig holds dependencies for profile routes.
type ProfileRouteConfig struct {
	ProfileHandler     *handlers.ProfileHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupProfileRoutes configures the signed-in user's profile routes.
func SetupProfileRoutes(engine *gin.Engine, cfg *ProfileRouteConfig) {
	profile := engine.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth(), cfg.IdentityMiddleware.Reconcile())
	{
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.PUT("/webhook", cfg.ProfileHandler.UpdateWebhook)
	}
}
