package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutOutput is the result of converting a cart into an order.
type CheckoutOutput struct {
	Order       *entity.Order `json:"order"`
	CheckoutURL string        `json:"checkout_url"`
	// QRCodePNG is the checkout URL as a base64-encoded PNG QR code,
	// so the payment page can be opened from another device.
	QRCodePNG string `json:"qr_code_png,omitempty"`
}

// CheckoutUsecase converts the session cart into a persisted order and
// hands payment off to the provider.
type CheckoutUsecase interface {
	// Checkout creates an order (and its items) from the caller's cart in one
	// transaction, opens a provider checkout session and clears the cart.
	// An empty cart is rejected before any write.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutOutput, error)

	// BillingPortal opens the provider's self-service billing portal for the
	// caller. Fails when the caller has never checked out (no billing account).
	BillingPortal(ctx context.Context, userID uuid.UUID) (string, error)
}
