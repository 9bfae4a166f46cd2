package services

import (
	"context"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the employee.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)

	// GenerateRefreshToken issues an opaque refresh token and persists its
	// hash against the employee.
	GenerateRefreshToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against an
	// employee's stored token details. It returns the employee if the token
	// is valid and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, employeeID string, refreshTokenString string) (*domain.Employee, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
