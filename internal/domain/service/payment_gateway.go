package service

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutLineItem is one purchasable line sent to the payment provider
// when a checkout session is created.
type CheckoutLineItem struct {
	Name      string
	UnitPrice int64 // In cents.
	Quantity  int
}

// CheckoutSession is the provider-hosted payment page for one order.
type CheckoutSession struct {
	ID  string // Provider session id, e.g. "cs_...".
	URL string // Hosted payment page the client is redirected to.
}

// PaymentGateway defines the outbound surface of the payment provider.
// The provider's SDK and wire format stay behind this interface.
type PaymentGateway interface {
	// EnsureCustomer returns the provider customer id for the given account,
	// creating the customer on first use.
	EnsureCustomer(ctx context.Context, email, name string) (string, error)

	// CreateCheckoutSession opens a hosted payment session for an order.
	CreateCheckoutSession(ctx context.Context, customerID string, orderID uuid.UUID, items []CheckoutLineItem) (*CheckoutSession, error)

	// CreateBillingPortalSession opens the provider's self-service billing portal.
	CreateBillingPortalSession(ctx context.Context, customerID string) (string, error)
}

// WebhookVerifier authenticates inbound webhook deliveries. Verification
// fails closed: any parse or signature mismatch is an error and the
// delivery must be rejected without recording anything.
type WebhookVerifier interface {
	// VerifySignature checks the signature header against the raw body.
	VerifySignature(payload []byte, signatureHeader string) error
}
