// Package google verifies Google ID tokens for the sign-in flow.
package google

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc checks a token's signature against Google's published
// keys along with its audience and expiry. Tests substitute a stub.
type validateFunc func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google sign-in.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken verifies a Google ID token and returns the contained
// user information. The signature is checked against Google's published
// keys; tokens that fail signature, audience or expiry checks never
// reach the claim inspection below.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Error("Failed to validate ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := s.verifyPayload(payload); err != nil {
		s.logger.Error("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         stringClaim(payload, "email"),
		Name:          stringClaim(payload, "name"),
		AvatarURL:     stringClaim(payload, "picture"),
		EmailVerified: boolClaim(payload, "email_verified"),
	}, nil
}

// verifyPayload checks the claims idtoken.Validate does not cover:
// the issuer and Google's email verification flag.
func (s *AuthServiceImpl) verifyPayload(payload *idtoken.Payload) error {
	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if stringClaim(payload, "email") == "" {
		return errors.New("token carries no email claim")
	}

	if !boolClaim(payload, "email_verified") {
		return errors.New("email not verified by provider")
	}

	return nil
}

func stringClaim(payload *idtoken.Payload, name string) string {
	value, _ := payload.Claims[name].(string)

	return value
}

func boolClaim(payload *idtoken.Payload, name string) bool {
	value, _ := payload.Claims[name].(bool)

	return value
}
