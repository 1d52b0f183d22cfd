package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GoogleSignInInput carries the identity provider's ID token.
type GoogleSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// LoginInput is the password login used by bootstrapped admin accounts.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token presented for a new pair.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileInput is the self-service profile mutation.
type UpdateProfileInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// --- Output DTOs ---

// AuthOutput returns the session tokens after a successful sign-in.
type AuthOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// UserUsecase defines the identity and self-service account operations.
type UserUsecase interface {
	// SignInWithGoogle verifies the ID token, provisions the account on
	// first sign-in and issues a session token pair.
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error)

	// LoginWithPassword authenticates a locally bootstrapped account.
	LoginWithPassword(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshSession exchanges a valid refresh token for a fresh token
	// pair; role and active state are re-read from the account.
	RefreshSession(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)

	// GetProfile returns the caller's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the self-service profile mutation.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the caller's own account.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
