package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanathkumar-crypto/issue-tracker/internal/application/identity"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/constants"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

type IdentityMiddleware struct {
	resolver *identity.Resolver
	logger   logger.Interface
}

func NewIdentityMiddleware(resolver *identity.Resolver, logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{resolver: resolver, logger: logger}
}

// Reconcile replaces the token's identity claims with the effective
// principal from the user store, so allow-list promotions and demotions take
// effect immediately rather than at next login. A deleted user is rejected
// even with a valid token.
func (m *IdentityMiddleware) Reconcile() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(constants.ContextKeyUserEmail)
		if email == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
			c.Abort()
			return
		}

		principal, err := m.resolver.Resolve(c.Request.Context(), email)
		if err != nil {
			if errors.IsNotFoundError(err) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "unknown user")
			} else {
				m.logger.Errorw("identity resolution failed", "email", email, "error", err)
				utils.ErrorResponseWithError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, principal.UserID)
		c.Set(constants.ContextKeyUserEmail, principal.Email)
		c.Set(constants.ContextKeyUserName, principal.Name)
		c.Set(constants.ContextKeyUserRole, string(principal.Role))

		c.Next()
	}
}
