package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/dashboard/usecases"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

// DashboardHandler serves the aggregate workload view.
type DashboardHandler struct {
	getStatsUseCase *usecases.GetStatsUseCase
	logger          logger.Interface
}

func NewDashboardHandler(getStatsUC *usecases.GetStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getStatsUseCase: getStatsUC,
		logger:          logger,
	}
}

// GetStats handles GET /dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.getStatsUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to compute dashboard stats", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
