package impl

import (
	"context"
	"encoding/base64"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface. It is the one
// place where the session cart, the order store and the payment provider meet.
type checkoutService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	cartStore      repository.CartStore
	paymentGateway service.PaymentGateway
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CartStore      repository.CartStore
	PaymentGateway service.PaymentGateway
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		cartStore:      params.CartStore,
		paymentGateway: params.PaymentGateway,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the caller's cart into a persisted order, opens a
// provider checkout session and clears the cart.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutOutput, error) {
	cart, err := srv.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	customerID, err := srv.ensureBillingCustomer(ctx, user)
	if err != nil {
		return nil, err
	}

	order := buildOrderFromCart(userID, cart)

	// The order and its items are one atomic write.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	session, err := srv.paymentGateway.CreateCheckoutSession(ctx, customerID, order.ID, checkoutLines(cart))
	if err != nil {
		srv.log(ctx).Error("Payment provider rejected checkout session", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentProviderFailed.WrapMessage("create checkout session")
	}

	output := &usecase.CheckoutOutput{
		Order:       order,
		CheckoutURL: session.URL,
	}

	// QR generation and cart cleanup must not fail a paid-for checkout.
	if png, qrErr := srv.qrcodeService.GeneratePaymentQR(session.URL); qrErr != nil {
		srv.log(ctx).Warn("Failed to generate checkout QR code", slog.Any("error", qrErr))
	} else {
		output.QRCodePNG = base64.StdEncoding.EncodeToString(png)
	}

	if delErr := srv.cartStore.Delete(ctx, userID); delErr != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.Any("userID", userID), slog.Any("error", delErr))
	}

	event := &service.OrderEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      service.OrderEventCreated,
		OrderID:   order.ID.String(),
		UserID:    userID.String(),
		Total:     order.Total,
	}
	if pubErr := srv.eventPublisher.PublishOrderEvent(ctx, event); pubErr != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.Any("error", pubErr))
	}

	return output, nil
}

// BillingPortal opens the provider's self-service billing portal.
func (srv *checkoutService) BillingPortal(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find user by id")
	}

	if user.StripeCustomerID == "" {
		return "", domainerrors.ErrNoBillingAccount
	}

	url, err := srv.paymentGateway.CreateBillingPortalSession(ctx, user.StripeCustomerID)
	if err != nil {
		srv.log(ctx).Error("Payment provider rejected portal session", slog.Any("userID", userID), slog.Any("error", err))

		return "", domainerrors.ErrPaymentProviderFailed.WrapMessage("create billing portal session")
	}

	return url, nil
}

// ensureBillingCustomer resolves the provider customer id, creating the
// customer on first checkout and persisting the id on the user.
func (srv *checkoutService) ensureBillingCustomer(ctx context.Context, user *entity.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	customerID, err := srv.paymentGateway.EnsureCustomer(ctx, user.Email, user.Name)
	if err != nil {
		srv.log(ctx).Error("Failed to create billing customer", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", domainerrors.ErrPaymentProviderFailed.WrapMessage("create customer")
	}

	user.StripeCustomerID = customerID
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to store billing customer id")
	}

	return customerID, nil
}

// buildOrderFromCart snapshots the cart into a new order entity.
func buildOrderFromCart(userID uuid.UUID, cart entity.Cart) *entity.Order {
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items:  make([]*entity.OrderItem, 0, len(cart.Items)),
	}

	for _, item := range cart.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	order.Total = order.ComputeTotal()

	return order
}

// checkoutLines maps cart items to provider line items.
func checkoutLines(cart entity.Cart) []service.CheckoutLineItem {
	lines := make([]service.CheckoutLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, service.CheckoutLineItem{
			Name:      item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return lines
}
