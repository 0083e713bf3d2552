package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/identity"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 600
)

type AuthHandler struct {
	emailLoginUseCase  *identity.EmailLoginUseCase
	googleLoginUseCase *identity.GoogleLoginUseCase
	logger             logger.Interface
}

func NewAuthHandler(
	emailLoginUC *identity.EmailLoginUseCase,
	googleLoginUC *identity.GoogleLoginUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		emailLoginUseCase:  emailLoginUC,
		googleLoginUseCase: googleLoginUC,
		logger:             logger,
	}
}

type EmailLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toLoginResponse(result *identity.LoginResult) LoginResponse {
	return LoginResponse{
		Token: result.Token,
		User: UserResponse{
			ID:    result.Principal.UserID,
			Email: result.Principal.Email,
			Name:  result.Principal.Name,
			Role:  result.Principal.Role.String(),
		},
	}
}

// EmailLogin handles POST /auth/login
func (h *AuthHandler) EmailLogin(c *gin.Context) {
	var req EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("a valid email is required"))
		return
	}

	result, err := h.emailLoginUseCase.Execute(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Warnw("email login rejected", "email", req.Email, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", toLoginResponse(result))
}

// InitiateGoogleLogin handles GET /auth/google. The anti-forgery state is
// stored in a short-lived cookie and verified on callback.
func (h *AuthHandler) InitiateGoogleLogin(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		h.logger.Errorw("failed to generate oauth state", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to initiate login"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, oauthStateMaxAge, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleLoginUseCase.AuthURL(state))
}

// HandleGoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("oauth provider returned error", "error_code", errParam)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication failed"))
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("missing authorization code"))
		return
	}

	state := c.Query("state")
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != expected {
		h.logger.Warnw("oauth state mismatch")
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired state"))
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	result, err := h.googleLoginUseCase.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.Warnw("google login rejected", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", toLoginResponse(result))
}

// Logout handles POST /auth/logout. Tokens are stateless, so the server side
// has nothing to revoke; the client drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
