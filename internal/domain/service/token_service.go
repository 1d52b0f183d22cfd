package service

import (
	"github.com/google/uuid"
)

// SessionClaims is the session state carried inside an access token:
// who the caller is, their authorization tier and whether the account
// was active when the token was issued.
type SessionClaims struct {
	UserID uuid.UUID
	Role   string
	Active bool
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user session.
	GenerateTokens(claims SessionClaims) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns the session claims.
	ValidateAccessToken(tokenString string) (*SessionClaims, error)

	// ValidateRefreshToken checks a refresh token and returns the session's
	// user id. Authorization state is re-read from the account on refresh.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
}
