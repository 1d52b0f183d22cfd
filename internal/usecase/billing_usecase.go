package usecase

import (
	"context"
)

// WebhookEventInput is one verified webhook delivery. Signature
// verification happens in the delivery layer before this is built;
// the use case only sees authenticated payloads.
type WebhookEventInput struct {
	ProviderEventID string
	Type            string
	Payload         []byte
}

// WebhookOutcome describes what happened to a delivery.
type WebhookOutcome string

const (
	// WebhookProcessed means a known event type was handled and recorded.
	WebhookProcessed WebhookOutcome = "processed"
	// WebhookIgnored means an unknown event type was recorded as a no-op.
	WebhookIgnored WebhookOutcome = "ignored"
	// WebhookDuplicate means the provider event id was seen before; nothing ran.
	WebhookDuplicate WebhookOutcome = "duplicate"
)

// BillingUsecase applies billing state changes pushed by the payment provider.
type BillingUsecase interface {
	// ProcessEvent deduplicates by provider event id, dispatches known event
	// types to their handler, and records the delivery. Unknown types are
	// recorded and acknowledged without a business effect.
	ProcessEvent(ctx context.Context, input *WebhookEventInput) (WebhookOutcome, error)
}
