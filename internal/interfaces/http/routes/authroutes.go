package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.EmailLogin)
		auth.GET("/google", cfg.AuthHandler.InitiateGoogleLogin)
		auth.GET("/google/callback", cfg.AuthHandler.HandleGoogleCallback)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
	}
}
