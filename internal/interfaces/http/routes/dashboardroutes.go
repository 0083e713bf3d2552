package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
)

// DashboardRouteConfig holds dependencies for dashboard routes.
type DashboardRouteConfig struct {
	DashboardHandler   *handlers.DashboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupDashboardRoutes configures the aggregate stats route.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth(), cfg.IdentityMiddleware.Reconcile())
	{
		dashboard.GET("", cfg.DashboardHandler.GetStats)
	}
}
