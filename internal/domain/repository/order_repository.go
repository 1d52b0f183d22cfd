package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
)

// OrderRepository defines the standard operations for order persistence.
// An order always carries its items; the cascade-by-emptiness rule
// (deleting the last item deletes the order) lives in the use case layer,
// which relies on CountItems and Delete here.
type OrderRepository interface {
	// Create persists a new order together with all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves all orders of one user with their items, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves a page of all orders with their items, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// FindItemByID retrieves a single order item.
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.OrderItem, error)

	// DeleteItem removes one order item.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// CountItems returns the number of items remaining on an order.
	CountItems(ctx context.Context, orderID uuid.UUID) (int64, error)

	// Delete removes an order and all of its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
