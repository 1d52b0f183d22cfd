package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListOrdersInput pages the admin order listing.
type ListOrdersInput struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// OrderListOutput is one page of orders plus the total count. Count and
// page fetch run inside a single transaction so the numbers agree.
type OrderListOutput struct {
	Orders   []*entity.Order `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// AdminOrderUsecase defines the cross-user order operations.
type AdminOrderUsecase interface {
	// ListOrders returns a page of all orders with a consistent total.
	ListOrders(ctx context.Context, input *ListOrdersInput) (*OrderListOutput, error)

	// DeleteOrder removes an order and all of its items.
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error

	// DeleteOrderItem removes one line; removing the last line deletes the order.
	DeleteOrderItem(ctx context.Context, orderID, itemID uuid.UUID) error
}
