// Package admin holds the HTTP handlers for the administration surface:
// category catalog, hospital registry, team roster and user roles.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/admin/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type AdminHandler struct {
	categoryUseCase    *usecases.CategoryAdminUseCase
	hospitalUseCase    *usecases.HospitalAdminUseCase
	teamUseCase        *usecases.TeamAdminUseCase
	setUserRoleUseCase *usecases.SetUserRoleUseCase
	overviewUseCase    *usecases.OverviewUseCase
	logger             logger.Interface
}

func NewAdminHandler(
	categoryUC *usecases.CategoryAdminUseCase,
	hospitalUC *usecases.HospitalAdminUseCase,
	teamUC *usecases.TeamAdminUseCase,
	setUserRoleUC *usecases.SetUserRoleUseCase,
	overviewUC *usecases.OverviewUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		categoryUseCase:    categoryUC,
		hospitalUseCase:    hospitalUC,
		teamUseCase:        teamUC,
		setUserRoleUseCase: setUserRoleUC,
		overviewUseCase:    overviewUC,
		logger:             logger,
	}
}

// GetOverview handles GET /admin/overview
func (h *AdminHandler) GetOverview(c *gin.Context) {
	result, err := h.overviewUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load admin overview", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toOverviewResponse(result))
}

// ListCategories handles GET /admin/categories
func (h *AdminHandler) ListCategories(c *gin.Context) {
	catalog, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", catalog)
}

// AddCategory handles POST /admin/categories
func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("category name is required"))
		return
	}

	if err := h.categoryUseCase.Add(c.Request.Context(), req.Name); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category added", nil)
}

// RenameCategory handles PUT /admin/categories/:name
func (h *AdminHandler) RenameCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("category name is required"))
		return
	}

	if err := h.categoryUseCase.Rename(c.Request.Context(), c.Param("name"), req.Name); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category renamed", nil)
}

// DeleteCategory handles DELETE /admin/categories/:name
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUseCase.Delete(c.Request.Context(), c.Param("name")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted", nil)
}

// AddSubcategory handles POST /admin/categories/:name/subcategories
func (h *AdminHandler) AddSubcategory(c *gin.Context) {
	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("subcategory name is required"))
		return
	}

	if err := h.categoryUseCase.AddSub(c.Request.Context(), c.Param("name"), req.Name); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subcategory added", nil)
}

// RenameSubcategory handles PUT /admin/categories/:name/subcategories/:sub
func (h *AdminHandler) RenameSubcategory(c *gin.Context) {
	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("subcategory name is required"))
		return
	}

	if err := h.categoryUseCase.RenameSub(c.Request.Context(), c.Param("name"), c.Param("sub"), req.Name); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subcategory renamed", nil)
}

// DeleteSubcategory handles DELETE /admin/categories/:name/subcategories/:sub
func (h *AdminHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.categoryUseCase.DeleteSub(c.Request.Context(), c.Param("name"), c.Param("sub")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subcategory deleted", nil)
}

// ListHospitals handles GET /admin/hospitals
func (h *AdminHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.hospitalUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toHospitalResponses(hospitals))
}

// AddHospital handles POST /admin/hospitals
func (h *AdminHandler) AddHospital(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("hospital name is required"))
		return
	}

	if err := h.hospitalUseCase.Add(c.Request.Context(), req.Name, req.Zone); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hospital added", nil)
}

// EditHospital handles PUT /admin/hospitals/:name
func (h *AdminHandler) EditHospital(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("hospital name is required"))
		return
	}

	if err := h.hospitalUseCase.Edit(c.Request.Context(), c.Param("name"), req.Name, req.Zone); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hospital updated", nil)
}

// DeleteHospital handles DELETE /admin/hospitals/:name
func (h *AdminHandler) DeleteHospital(c *gin.Context) {
	if err := h.hospitalUseCase.Delete(c.Request.Context(), c.Param("name")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hospital deleted", nil)
}

// BulkAddHospitals handles POST /admin/hospitals/bulk. The body carries one
// "name,zone" pair per line; blank names are skipped.
func (h *AdminHandler) BulkAddHospitals(c *gin.Context) {
	var req BulkAddHospitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("hospital list is required"))
		return
	}

	result, err := h.hospitalUseCase.BulkAddText(c.Request.Context(), req.Text)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk add complete", BulkAddHospitalsResponse{
		Added:   result.Added,
		Skipped: result.Skipped,
	})
}

// ListTeam handles GET /admin/team
func (h *AdminHandler) ListTeam(c *gin.Context) {
	members, err := h.teamUseCase.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTeamMemberResponses(members))
}

// AddTeamMember handles POST /admin/team
func (h *AdminHandler) AddTeamMember(c *gin.Context) {
	var req AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("a valid email is required"))
		return
	}

	member, err := h.teamUseCase.Add(c.Request.Context(), req.Email)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTeamMemberResponse(member), "Team member added")
}

// RemoveTeamMember handles DELETE /admin/team/:uid
func (h *AdminHandler) RemoveTeamMember(c *gin.Context) {
	if err := h.teamUseCase.Remove(c.Request.Context(), c.Param("uid")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SetUserRole handles PUT /admin/users/role
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email and role are required"))
		return
	}

	updated, err := h.setUserRoleUseCase.Execute(c.Request.Context(), usecases.SetUserRoleCommand{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", toUserResponse(updated))
}
