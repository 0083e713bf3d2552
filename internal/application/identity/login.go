package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/user"
	"github.com/sanathkumar-crypto/issue-tracker/internal/infrastructure/auth"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/authorization"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/errors"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
)

// TokenIssuer mints the session token for a resolved principal.
type TokenIssuer interface {
	Generate(userID, email, name string, role authorization.UserRole) (string, error)
}

// OAuthClient is the provider side of the Google login flow.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error)
}

type LoginResult struct {
	Token     string
	Principal *Principal
}

// EmailLoginUseCase is the fallback login: any address on the allowed domain
// signs in directly, creating the user on first use.
type EmailLoginUseCase struct {
	resolver      *Resolver
	tokens        TokenIssuer
	allowedDomain string
	logger        logger.Interface
}

func NewEmailLoginUseCase(resolver *Resolver, tokens TokenIssuer, allowedDomain string, logger logger.Interface) *EmailLoginUseCase {
	return &EmailLoginUseCase{
		resolver:      resolver,
		tokens:        tokens,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

func (uc *EmailLoginUseCase) Execute(ctx context.Context, email string) (*LoginResult, error) {
	normalized := user.NormalizeEmail(email)
	if normalized == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if !strings.HasSuffix(normalized, "@"+uc.allowedDomain) {
		return nil, errors.NewValidationError(fmt.Sprintf("please use your @%s email address", uc.allowedDomain))
	}

	principal, err := uc.resolver.ResolveOrCreate(ctx, normalized, "")
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(principal.UserID, principal.Email, principal.Name, principal.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "email", normalized, "error", err)
		return nil, err
	}

	uc.logger.Infow("email login", "email", normalized, "role", principal.Role)
	return &LoginResult{Token: token, Principal: principal}, nil
}

// GoogleLoginUseCase drives the OAuth code flow. The state round-trip is the
// HTTP layer's concern; this use case exchanges the code and admits only
// addresses on the allowed domain.
type GoogleLoginUseCase struct {
	resolver      *Resolver
	tokens        TokenIssuer
	oauth         OAuthClient
	allowedDomain string
	logger        logger.Interface
}

func NewGoogleLoginUseCase(resolver *Resolver, tokens TokenIssuer, oauth OAuthClient, allowedDomain string, logger logger.Interface) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		resolver:      resolver,
		tokens:        tokens,
		oauth:         oauth,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

func (uc *GoogleLoginUseCase) AuthURL(state string) string {
	return uc.oauth.GetAuthURL(state)
}

func (uc *GoogleLoginUseCase) HandleCallback(ctx context.Context, code string) (*LoginResult, error) {
	accessToken, err := uc.oauth.ExchangeCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("oauth code exchange failed", "error", err)
		return nil, errors.NewUnauthorizedError("authentication failed")
	}

	info, err := uc.oauth.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("oauth userinfo fetch failed", "error", err)
		return nil, errors.NewUnauthorizedError("authentication failed")
	}

	email := user.NormalizeEmail(info.Email)
	if !strings.HasSuffix(email, "@"+uc.allowedDomain) {
		uc.logger.Warnw("login attempt from outside the allowed domain", "email", email)
		return nil, errors.NewForbiddenError(fmt.Sprintf("only @%s accounts may sign in", uc.allowedDomain))
	}

	principal, err := uc.resolver.ResolveOrCreate(ctx, email, info.Name)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(principal.UserID, principal.Email, principal.Name, principal.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "email", email, "error", err)
		return nil, err
	}

	uc.logger.Infow("google login", "email", email, "role", principal.Role)
	return &LoginResult{Token: token, Principal: principal}, nil
}
