package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminOrderService implements the cross-user order operations.
type adminOrderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AdminOrderServiceParams holds dependencies for AdminOrderService, injected by Fx.
type AdminOrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAdminOrderService is the constructor for adminOrderService.
func NewAdminOrderService(params AdminOrderServiceParams) usecase.AdminOrderUsecase {
	return &adminOrderService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *adminOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns a page of all orders. Count and page fetch share one
// transaction so the total cannot drift from the rows returned.
func (srv *adminOrderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.OrderListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	output := &usecase.OrderListOutput{
		Page:     page,
		PageSize: pageSize,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		total, err := orderRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		output.Total = total

		orders, err := orderRepo.List(ctx, pageSize, (page-1)*pageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		output.Orders = orders

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// DeleteOrder removes an order and all of its items.
func (srv *adminOrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if _, err := orderRepo.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		return orderRepo.Delete(ctx, orderID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", orderID))

	return nil
}

// DeleteOrderItem removes one line from any user's order. Removing the
// last line deletes the order itself.
func (srv *adminOrderService) DeleteOrderItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	return deleteOrderItemCascade(ctx, srv.txManager, srv.log(ctx), orderID, itemID)
}
