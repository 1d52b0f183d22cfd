package model

import (
	"time"

	"github.com/google/uuid"
)

// BillingEventModel mirrors the 'billing_events' table: the webhook
// delivery log. The unique provider event id is what makes redeliveries
// detectable; processed records whether the handlers completed.
type BillingEventModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderEventID string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Type            string    `gorm:"type:varchar(128);not null;index"`
	Payload         []byte    `gorm:"type:jsonb"`
	Processed       bool      `gorm:"not null;default:false"`
	ReceivedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BillingEventModel) TableName() string {
	return "billing_events"
}
