package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/identity"
	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type ProfileHandler struct {
	profileUseCase *identity.ProfileUseCase
	logger         logger.Interface
}

func NewProfileHandler(profileUC *identity.ProfileUseCase, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUC,
		logger:         logger,
	}
}

type UpdateWebhookRequest struct {
	GoogleChatWebhookURL string `json:"googleChatWebhookUrl"`
}

type ProfileResponse struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	GoogleChatWebhookURL string `json:"googleChatWebhookUrl"`
}

func toProfileResponse(u *user.User) ProfileResponse {
	return ProfileResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		Role:                 u.Role.String(),
		GoogleChatWebhookURL: u.GoogleChatWebhookURL,
	}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	email := c.GetString(constants.ContextKeyUserEmail)

	u, err := h.profileUseCase.Get(c.Request.Context(), email)
	if err != nil {
		h.logger.Errorw("failed to load profile", "email", email, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toProfileResponse(u))
}

// UpdateWebhook handles PUT /profile/webhook
func (h *ProfileHandler) UpdateWebhook(c *gin.Context) {
	var req UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	email := c.GetString(constants.ContextKeyUserEmail)
	u, err := h.profileUseCase.UpdateWebhook(c.Request.Context(), email, req.GoogleChatWebhookURL)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", toProfileResponse(u))
}
