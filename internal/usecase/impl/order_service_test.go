package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service   *orderService
	orderRepo *mockRepo.MockOrderRepository
	factory   *mockRepo.MockRepositoryFactory
}

func newOrderFixture(t *testing.T) *orderFixture {
	txManager, factory := expectTransaction(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().
		NewOrderRepository().
		Return(orderRepo).
		Maybe()

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	}).(*orderService)

	return &orderFixture{service: service, orderRepo: orderRepo, factory: factory}
}

func TestOrderService_GetOwn_ForbiddenForOtherUser(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	owner := uuid.New()
	orderID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: owner}, nil)

	order, err := f.service.GetOwn(ctx, uuid.New(), orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_DeleteOwnItem_KeepsOrderWithRemainingItems(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	f.orderRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.OrderItem{ID: itemID, OrderID: orderID}, nil)

	f.orderRepo.EXPECT().
		DeleteItem(ctx, itemID).
		Return(nil)

	f.orderRepo.EXPECT().
		CountItems(ctx, orderID).
		Return(int64(1), nil)

	// Order deletion must NOT be called: one item remains.
	err := f.service.DeleteOwnItem(ctx, userID, orderID, itemID)
	require.NoError(t, err)
}

func TestOrderService_DeleteOwnItem_LastItemDeletesOrder(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	f.orderRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.OrderItem{ID: itemID, OrderID: orderID}, nil)

	f.orderRepo.EXPECT().
		DeleteItem(ctx, itemID).
		Return(nil)

	f.orderRepo.EXPECT().
		CountItems(ctx, orderID).
		Return(int64(0), nil)

	f.orderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(nil)

	err := f.service.DeleteOwnItem(ctx, userID, orderID, itemID)
	require.NoError(t, err)
}

func TestOrderService_DeleteOwnItem_ItemFromAnotherOrder(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	itemID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	f.orderRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.OrderItem{ID: itemID, OrderID: uuid.New()}, nil)

	err := f.service.DeleteOwnItem(ctx, userID, orderID, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderItemNotFound)
}

func TestOrderService_ListOwn(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID, Total: 6998}}

	f.orderRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(orders, nil)

	got, err := f.service.ListOwn(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_GetOwn_NotFound(t *testing.T) {
	f := newOrderFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := f.service.GetOwn(ctx, uuid.New(), orderID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
