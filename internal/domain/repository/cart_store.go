package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore is the session-scoped persistence adapter for carts.
// The cart itself is a pure value (entity.Cart); the store only loads and
// saves snapshots keyed by the owning user, with a TTL owned by the
// implementation. A missing cart is not an error: Get returns an empty cart.
type CartStore interface {
	// Get loads the cart for a user. Returns an empty cart when none is stored.
	Get(ctx context.Context, userID uuid.UUID) (entity.Cart, error)

	// Save stores the cart snapshot for a user, refreshing its TTL.
	Save(ctx context.Context, userID uuid.UUID, cart entity.Cart) error

	// Delete drops the stored cart, if any.
	Delete(ctx context.Context, userID uuid.UUID) error
}
