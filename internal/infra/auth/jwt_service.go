// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user session.
func (s *jwtService) GenerateTokens(claims service.SessionClaims) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(claims, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	// The refresh token identifies the session but carries no authorization
	// state; role and active flag are re-read on refresh.
	refreshToken, err = s.generateToken(service.SessionClaims{UserID: claims.UserID}, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateAccessToken checks an access token and returns the session claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if tokenType, _ := mapClaims["type"].(string); tokenType != "access" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	role, _ := mapClaims["role"].(string)
	active, _ := mapClaims["active"].(bool)

	return &service.SessionClaims{
		UserID: userID,
		Role:   role,
		Active: active,
	}, nil
}

// ValidateRefreshToken checks a refresh token and returns the session's
// user id. The refresh token is signed with its own secret, so an access
// token can never be replayed as a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.refreshSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	if tokenType, _ := mapClaims["type"].(string); tokenType != "refresh" {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidSubject
	}

	return userID, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(claims service.SessionClaims, ttl time.Duration, secret, tokenType string) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":  claims.UserID.String(),     // Subject (who the token is for)
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
		"type": tokenType,                  // Type of token (access or refresh)
	}
	// Only the access token carries authorization state.
	if tokenType == "access" {
		mapClaims["role"] = claims.Role
		mapClaims["active"] = claims.Active
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)

	return token.SignedString([]byte(secret))
}
