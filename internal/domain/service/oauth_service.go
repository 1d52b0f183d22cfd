package service

import (
	"context"
)

// OAuthUser represents user information verified from the identity provider.
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string // The user's email address.
	Name          string // The user's display name.
	AvatarURL     string // URL to the user's profile picture.
	EmailVerified bool   // Whether the email is verified by the provider.
}

// OAuthAuthService defines the interface for identity-provider sign-in.
// Accounts are provisioned on the first successfully verified ID token.
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
