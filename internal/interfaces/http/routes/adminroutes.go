package routes

import (
	"github.com/gin-gonic/gin"

	adminhandler "github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/handlers/admin"
	"github.com/sanathkumar-crypto/issue-tracker/internal/interfaces/http/middleware"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	AdminHandler       *adminhandler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
}

// SetupAdminRoutes configures the administration routes. All of them require
// an admin role after reconciliation.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.IdentityMiddleware.Reconcile(), authorization.RequireAdmin())
	{
		admin.GET("/overview", cfg.AdminHandler.GetOverview)

		admin.GET("/categories", cfg.AdminHandler.ListCategories)
		admin.POST("/categories", cfg.AdminHandler.AddCategory)
		admin.PUT("/categories/:name", cfg.AdminHandler.RenameCategory)
		admin.DELETE("/categories/:name", cfg.AdminHandler.DeleteCategory)
		admin.POST("/categories/:name/subcategories", cfg.AdminHandler.AddSubcategory)
		admin.PUT("/categories/:name/subcategories/:sub", cfg.AdminHandler.RenameSubcategory)
		admin.DELETE("/categories/:name/subcategories/:sub", cfg.AdminHandler.DeleteSubcategory)

		admin.GET("/hospitals", cfg.AdminHandler.ListHospitals)
		admin.POST("/hospitals", cfg.AdminHandler.AddHospital)
		admin.POST("/hospitals/bulk", cfg.AdminHandler.BulkAddHospitals)
		admin.PUT("/hospitals/:name", cfg.AdminHandler.EditHospital)
		admin.DELETE("/hospitals/:name", cfg.AdminHandler.DeleteHospital)

		admin.GET("/team", cfg.AdminHandler.ListTeam)
		admin.POST("/team", cfg.AdminHandler.AddTeamMember)
		admin.DELETE("/team/:uid", cfg.AdminHandler.RemoveTeamMember)

		admin.PUT("/users/role", cfg.AdminHandler.SetUserRole)
	}
}
