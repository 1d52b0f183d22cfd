// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known billing event types pushed by the payment provider.
// Anything else is acknowledged and recorded without a business effect.
const (
	EventInvoicePaid         = "invoice.paid"
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// BillingEvent is a log entry for one webhook delivery from the payment
// provider. The provider event id is unique; Processed flips to true only
// after the event's handlers ran, so a redelivery of an event whose first
// delivery failed mid-dispatch is processed again instead of dropped.
type BillingEvent struct {
	ID              uuid.UUID
	ProviderEventID string // The provider's event id, e.g. "evt_...".
	Type            string // The provider's event type string.
	Payload         []byte // Raw request body as delivered.
	Processed       bool
	ReceivedAt      time.Time
}
