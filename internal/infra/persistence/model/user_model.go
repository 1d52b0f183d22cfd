// Package model contains the GORM persistence models mirroring the
// database schema. Mapping to and from domain entities happens in the
// postgres package; nothing outside infra sees these types.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string    `gorm:"type:varchar(255);unique;not null"`
	Name             string    `gorm:"type:varchar(100)"`
	Role             string    `gorm:"type:varchar(16);not null;default:'user'"`
	Active           bool      `gorm:"not null;default:true"`
	PasswordHash     string    `gorm:"type:varchar(255)"`
	StripeCustomerID string    `gorm:"type:varchar(255);index"`

	// Billing provider subscription state, written by webhook handlers.
	SubscriptionPlanID    string `gorm:"type:varchar(255)"`
	SubscriptionStatus    string `gorm:"type:varchar(32)"`
	SubscriptionPeriodEnd *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
