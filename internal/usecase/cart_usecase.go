package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput adds one product to the caller's cart. The product
// snapshot (title, price, image) is taken server-side from the catalog.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// SetCartInput replaces the full cart item list.
type SetCartInput struct {
	Items []AddCartItemInput `json:"items" validate:"dive"`
}

// SetCartQuantityInput sets the quantity for one product already in the cart.
type SetCartQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// RemoveCartItemsInput removes several products from the cart at once.
type RemoveCartItemsInput struct {
	ProductIDs []uuid.UUID `json:"product_ids" validate:"required,min=1"`
}

// CartUsecase defines the session-cart operations. All transitions are
// pure (entity.Cart values); this layer only loads snapshots, applies one
// transition and saves the result.
type CartUsecase interface {
	// GetCart returns the caller's current cart; an empty cart if none exists.
	GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error)

	// SetCart replaces the full cart contents.
	SetCart(ctx context.Context, userID uuid.UUID, input *SetCartInput) (entity.Cart, error)

	// AddItem adds one product (or bumps its quantity).
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (entity.Cart, error)

	// RemoveItem removes one product by id; absent ids are a no-op.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (entity.Cart, error)

	// RemoveItems removes several products by id.
	RemoveItems(ctx context.Context, userID uuid.UUID, input *RemoveCartItemsInput) (entity.Cart, error)

	// SetItemQuantity sets the quantity for one product; absent ids are a no-op.
	SetItemQuantity(ctx context.Context, userID, productID uuid.UUID, input *SetCartQuantityInput) (entity.Cart, error)
}
