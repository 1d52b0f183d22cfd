package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminOrderFixture(t *testing.T) (usecase.AdminOrderUsecase, *mockRepo.MockOrderRepository) {
	txManager, factory := expectTransaction(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().
		NewOrderRepository().
		Return(orderRepo).
		Maybe()

	service := NewAdminOrderService(AdminOrderServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return service, orderRepo
}

func TestAdminOrderService_ListOrders(t *testing.T) {
	service, orderRepo := newAdminOrderFixture(t)

	ctx := context.Background()
	orders := []*entity.Order{
		{ID: uuid.New(), Total: 6998},
		{ID: uuid.New(), Total: 1999},
	}

	orderRepo.EXPECT().
		Count(ctx).
		Return(int64(25), nil)

	orderRepo.EXPECT().
		List(ctx, 10, 10).
		Return(orders, nil)

	output, err := service.ListOrders(ctx, &usecase.ListOrdersInput{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Len(t, output.Orders, 2)
}

func TestAdminOrderService_DeleteOrder(t *testing.T) {
	service, orderRepo := newAdminOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID}, nil)

	orderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(nil)

	err := service.DeleteOrder(ctx, orderID)
	require.NoError(t, err)
}

func TestAdminOrderService_DeleteOrder_NotFound(t *testing.T) {
	service, orderRepo := newAdminOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := service.DeleteOrder(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestAdminOrderService_DeleteOrderItem_LastItemDeletesOrder(t *testing.T) {
	service, orderRepo := newAdminOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	itemID := uuid.New()

	orderRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.OrderItem{ID: itemID, OrderID: orderID}, nil)

	orderRepo.EXPECT().
		DeleteItem(ctx, itemID).
		Return(nil)

	orderRepo.EXPECT().
		CountItems(ctx, orderID).
		Return(int64(0), nil)

	orderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(nil)

	err := service.DeleteOrderItem(ctx, orderID, itemID)
	require.NoError(t, err)
}
