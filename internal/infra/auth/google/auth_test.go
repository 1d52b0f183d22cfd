package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test-client-id"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(cfg, logger).(*AuthServiceImpl)
	if validate != nil {
		service.validate = validate
	}

	return service
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "test-client-id",
		Subject:  "google-user-1",
		Claims: map[string]interface{}{
			"email":          "shopper@example.com",
			"email_verified": true,
			"name":           "Shopper",
			"picture":        "https://example.com/avatar.png",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotToken, gotAudience string
	service := newTestAuthService(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotToken = token
		gotAudience = audience

		return validPayload(), nil
	})

	user, err := service.VerifyIDToken(context.Background(), "signed-token")
	require.NoError(t, err)
	assert.Equal(t, "google-user-1", user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.Equal(t, "Shopper", user.Name)
	assert.True(t, user.EmailVerified)

	// The configured client id is the audience the validator enforces.
	assert.Equal(t, "signed-token", gotToken)
	assert.Equal(t, "test-client-id", gotAudience)
}

func TestAuthService_VerifyIDToken_SignatureRejected(t *testing.T) {
	service := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: could not verify signature")
	})

	_, err := service.VerifyIDToken(context.Background(), "forged-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestAuthService_VerifyIDToken_WrongIssuer(t *testing.T) {
	payload := validPayload()
	payload.Issuer = "https://evil.example.com"
	service := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := service.VerifyIDToken(context.Background(), "signed-token")
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	payload := validPayload()
	payload.Claims["email_verified"] = false
	service := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := service.VerifyIDToken(context.Background(), "signed-token")
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_MissingEmail(t *testing.T) {
	payload := validPayload()
	delete(payload.Claims, "email")
	service := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := service.VerifyIDToken(context.Background(), "signed-token")
	assert.Error(t, err)
}

func TestNewAuthService_UsesGoogleValidator(t *testing.T) {
	service := newTestAuthService(nil)

	assert.NotNil(t, service.validate)
}
