package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the authenticated, own-resource order operations.
type OrderUsecase interface {
	// ListOwn returns all orders of the caller, newest first.
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOwn returns one order; foreign orders yield a forbidden error.
	GetOwn(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// DeleteOwnItem removes one line from one of the caller's orders.
	// Removing the last line deletes the order itself.
	DeleteOwnItem(ctx context.Context, userID, orderID, itemID uuid.UUID) error
}
