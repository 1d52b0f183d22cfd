package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface (own-resource operations).
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOwn returns all orders of the caller, newest first.
func (srv *orderService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// GetOwn returns one order after checking ownership.
func (srv *orderService) GetOwn(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// DeleteOwnItem removes one line from one of the caller's orders,
// applying the cascade-by-emptiness rule.
func (srv *orderService) DeleteOwnItem(ctx context.Context, userID, orderID, itemID uuid.UUID) error {
	if _, err := srv.GetOwn(ctx, userID, orderID); err != nil {
		return err
	}

	return deleteOrderItemCascade(ctx, srv.txManager, srv.log(ctx), orderID, itemID)
}

// deleteOrderItemCascade removes one order item inside a transaction and
// deletes the order itself when its last item is gone. Shared between the
// own-resource and admin order services.
func deleteOrderItemCascade(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger, orderID, itemID uuid.UUID) error {
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		item, err := orderRepo.FindItemByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderItemNotFound) {
				return domainerrors.ErrOrderItemNotFound
			}

			return errors.Wrap(err, "failed to find order item by id")
		}
		if item.OrderID != orderID {
			return domainerrors.ErrOrderItemNotFound.WrapMessage("item does not belong to this order")
		}

		if err := orderRepo.DeleteItem(ctx, itemID); err != nil {
			return errors.Wrap(err, "failed to delete order item")
		}

		remaining, err := orderRepo.CountItems(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to count remaining order items")
		}
		if remaining == 0 {
			if err := orderRepo.Delete(ctx, orderID); err != nil {
				return errors.Wrap(err, "failed to delete emptied order")
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to delete order item",
			slog.Any("orderID", orderID),
			slog.Any("itemID", itemID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}
