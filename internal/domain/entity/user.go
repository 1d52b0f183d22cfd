// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. Accounts are provisioned on first
// sign-in through the external identity provider; the password hash is
// only set for locally bootstrapped admin accounts.
type User struct {
	ID               uuid.UUID // The unique identifier for the account.
	Email            string    // Primary contact email, also the login identifier.
	Name             string    // Display name from the identity provider.
	Role             Role      // Authorization tier: admin or user.
	Active           bool      // Inactive accounts are denied all authenticated procedures.
	PasswordHash     string    // bcrypt hash; empty for provider-only accounts.
	StripeCustomerID string    // Foreign identifier at the payment provider; empty until first checkout.
	Subscription     *Subscription
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Subscription mirrors the billing provider's view of the user's
// recurring plan. It is written exclusively by webhook handlers.
type Subscription struct {
	PlanID           string    // Provider price/plan identifier.
	Status           string    // Provider status string: active, past_due, canceled, ...
	CurrentPeriodEnd time.Time // End of the currently paid period.
}

// IsAdmin reports whether the account may call admin procedures.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
