package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	service        *checkoutService
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	cartStore      *mockRepo.MockCartStore
	paymentGateway *mockSvc.MockPaymentGateway
	qrcodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	txManager, factory := expectTransaction(t)
	f := &checkoutFixture{
		txManager:      txManager,
		factory:        factory,
		userRepo:       mockRepo.NewMockUserRepository(t),
		cartStore:      mockRepo.NewMockCartStore(t),
		paymentGateway: mockSvc.NewMockPaymentGateway(t),
		qrcodeService:  mockSvc.NewMockQRCodeService(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:      f.txManager,
		UserRepo:       f.userRepo,
		CartStore:      f.cartStore,
		PaymentGateway: f.paymentGateway,
		QRCodeService:  f.qrcodeService,
		EventPublisher: f.eventPublisher,
		Logger:         newDiscardLogger(),
	}).(*checkoutService)

	return f
}

func twoLineCart() entity.Cart {
	return entity.Cart{Items: []entity.CartItem{
		{ProductID: uuid.New(), Title: "Mechanical Keyboard", UnitPrice: 4999, Quantity: 2},
		{ProductID: uuid.New(), Title: "Desk Lamp", UnitPrice: 1999, Quantity: 1},
	}}
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.cartStore.EXPECT().
		Get(ctx, userID).
		Return(entity.Cart{}, nil)

	output, err := f.service.Checkout(ctx, userID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	user := newTestUser()
	cart := twoLineCart()

	f.cartStore.EXPECT().
		Get(ctx, user.ID).
		Return(cart, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	f.paymentGateway.EXPECT().
		EnsureCustomer(ctx, user.Email, user.Name).
		Return("cus_123", nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	f.factory.EXPECT().
		NewOrderRepository().
		Return(orderRepo)

	var created *entity.Order
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)

	f.paymentGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_123", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]service.CheckoutLineItem")).
		Return(&service.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil)

	f.qrcodeService.EXPECT().
		GeneratePaymentQR("https://pay.example.com/cs_123").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	f.cartStore.EXPECT().
		Delete(ctx, user.ID).
		Return(nil)

	f.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	output, err := f.service.Checkout(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, created)

	// Order totals come from the cart snapshot.
	assert.Equal(t, cart.Total(), created.Total)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, user.ID, created.UserID)

	assert.Equal(t, "https://pay.example.com/cs_123", output.CheckoutURL)
	assert.NotEmpty(t, output.QRCodePNG)
	assert.Equal(t, "cus_123", user.StripeCustomerID)
}

func TestCheckoutService_Checkout_ReusesExistingCustomer(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_existing"
	cart := twoLineCart()

	f.cartStore.EXPECT().
		Get(ctx, user.ID).
		Return(cart, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	f.factory.EXPECT().
		NewOrderRepository().
		Return(orderRepo)

	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	f.paymentGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_existing", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]service.CheckoutLineItem")).
		Return(&service.CheckoutSession{ID: "cs_456", URL: "https://pay.example.com/cs_456"}, nil)

	f.qrcodeService.EXPECT().
		GeneratePaymentQR("https://pay.example.com/cs_456").
		Return([]byte{0x89}, nil)

	f.cartStore.EXPECT().
		Delete(ctx, user.ID).
		Return(nil)

	f.eventPublisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	_, err := f.service.Checkout(ctx, user.ID)
	require.NoError(t, err)
}

func TestCheckoutService_Checkout_ProviderRejection(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_existing"
	cart := twoLineCart()

	f.cartStore.EXPECT().
		Get(ctx, user.ID).
		Return(cart, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	orderRepo := mockRepo.NewMockOrderRepository(t)
	f.factory.EXPECT().
		NewOrderRepository().
		Return(orderRepo)

	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	f.paymentGateway.EXPECT().
		CreateCheckoutSession(ctx, "cus_existing", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]service.CheckoutLineItem")).
		Return(nil, errors.New("provider down"))

	output, err := f.service.Checkout(ctx, user.ID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderFailed)
}

func TestCheckoutService_BillingPortal_NoBillingAccount(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	user := newTestUser()

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	url, err := f.service.BillingPortal(ctx, user.ID)
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrNoBillingAccount)
}

func TestCheckoutService_BillingPortal_Success(t *testing.T) {
	f := newCheckoutFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_existing"

	f.userRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	f.paymentGateway.EXPECT().
		CreateBillingPortalSession(ctx, "cus_existing").
		Return("https://billing.example.com/session", nil)

	url, err := f.service.BillingPortal(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://billing.example.com/session", url)
}
