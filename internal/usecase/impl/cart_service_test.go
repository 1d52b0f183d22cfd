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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartStore, *mockRepo.MockProductRepository) {
	mockStore := mockRepo.NewMockCartStore(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		CartStore:   mockStore,
		ProductRepo: mockProductRepo,
		Logger:      newDiscardLogger(),
	})

	return service, mockStore, mockProductRepo
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	service, mockStore, mockProductRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct(4999)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockStore.EXPECT().
		Get(ctx, userID).
		Return(entity.Cart{}, nil)

	var saved entity.Cart
	mockStore.EXPECT().
		Save(ctx, userID, mock.AnythingOfType("entity.Cart")).
		Run(func(_ context.Context, _ uuid.UUID, cart entity.Cart) {
			saved = cart
		}).
		Return(nil)

	cart, err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, product.Title, cart.Items[0].Title)
	assert.Equal(t, product.Price, cart.Items[0].UnitPrice)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, cart, saved)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, _, mockProductRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveItem_AbsentIDIsNoOp(t *testing.T) {
	service, mockStore, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := entity.Cart{Items: []entity.CartItem{
		{ProductID: uuid.New(), Title: "Desk Lamp", UnitPrice: 1999, Quantity: 1},
	}}

	mockStore.EXPECT().
		Get(ctx, userID).
		Return(existing, nil)

	mockStore.EXPECT().
		Save(ctx, userID, existing).
		Return(nil)

	cart, err := service.RemoveItem(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, existing.Items, cart.Items)
}

func TestCartService_SetItemQuantity(t *testing.T) {
	service, mockStore, _ := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	existing := entity.Cart{Items: []entity.CartItem{
		{ProductID: productID, Title: "Desk Lamp", UnitPrice: 1999, Quantity: 1},
	}}

	mockStore.EXPECT().
		Get(ctx, userID).
		Return(existing, nil)

	mockStore.EXPECT().
		Save(ctx, userID, mock.AnythingOfType("entity.Cart")).
		Return(nil)

	cart, err := service.SetItemQuantity(ctx, userID, productID, &usecase.SetCartQuantityInput{Quantity: 5})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_SetCart_ReplacesContents(t *testing.T) {
	service, mockStore, mockProductRepo := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct(2599)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockStore.EXPECT().
		Save(ctx, userID, mock.AnythingOfType("entity.Cart")).
		Return(nil)

	cart, err := service.SetCart(ctx, userID, &usecase.SetCartInput{
		Items: []usecase.AddCartItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(3*2599), cart.Total())
}
