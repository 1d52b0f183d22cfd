package auth

import (
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	claims := service.SessionClaims{
		UserID: uuid.New(),
		Role:   "admin",
		Active: true,
	}

	accessToken, refreshToken, err := jwtService.GenerateTokens(claims)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	parsed, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, "admin", parsed.Role)
	assert.True(t, parsed.Active)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	_, refreshToken, err := jwtService.GenerateTokens(service.SessionClaims{UserID: uuid.New()})
	require.NoError(t, err)

	// A refresh token is signed with a different secret and carries
	// type=refresh; both must keep it out of the access path.
	parsed, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	parsed, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	_, refreshToken, err := jwtService.GenerateTokens(service.SessionClaims{
		UserID: userID,
		Role:   "admin",
		Active: true,
	})
	require.NoError(t, err)

	parsedID, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTService_AccessTokenRejectedAsRefresh(t *testing.T) {
	jwtService, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(service.SessionClaims{UserID: uuid.New()})
	require.NoError(t, err)

	// An access token is signed with the access secret and carries
	// type=access; it must not mint new sessions.
	parsedID, err := jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
