package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// billingService applies billing state pushed by the payment provider.
// Every delivery is recorded in the event log first and marked processed
// only after its handlers ran. The unique provider event id makes a
// redelivery of a processed event a no-op, while a redelivery of an
// event whose first delivery failed mid-dispatch is processed again.
type billingService struct {
	billingEventRepo repository.BillingEventRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	BillingEventRepo repository.BillingEventRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		billingEventRepo: params.BillingEventRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessEvent records the delivery and dispatches known event types.
// Redeliveries of processed events and unknown types are acknowledged
// without a business effect; a redelivery of an event that was recorded
// but never finished dispatching runs its handlers again.
func (srv *billingService) ProcessEvent(ctx context.Context, input *usecase.WebhookEventInput) (usecase.WebhookOutcome, error) {
	event := &entity.BillingEvent{
		ID:              uuid.New(),
		ProviderEventID: input.ProviderEventID,
		Type:            input.Type,
		Payload:         input.Payload,
		ReceivedAt:      time.Now().UTC(),
	}
	if err := srv.billingEventRepo.Create(ctx, event); err != nil {
		if !errors.Is(err, repository.ErrDuplicateEvent) {
			return "", errors.Wrap(err, "failed to record billing event")
		}

		prior, findErr := srv.billingEventRepo.FindByProviderEventID(ctx, input.ProviderEventID)
		if findErr != nil {
			return "", errors.Wrap(findErr, "failed to load recorded billing event")
		}
		if prior.Processed {
			srv.log(ctx).Info("Duplicate webhook delivery",
				slog.String("providerEventID", input.ProviderEventID),
			)

			return usecase.WebhookDuplicate, nil
		}

		// The earlier delivery was recorded but its handlers never
		// completed; run the dispatch again against the stored event.
		srv.log(ctx).Info("Retrying unprocessed webhook delivery",
			slog.String("providerEventID", input.ProviderEventID),
		)
		event = prior
	}

	switch event.Type {
	case entity.EventInvoicePaid:
		return srv.dispatch(ctx, event, srv.handleInvoicePaid)
	case entity.EventSubscriptionCreated, entity.EventSubscriptionUpdated:
		return srv.dispatch(ctx, event, srv.handleSubscriptionChanged)
	case entity.EventSubscriptionDeleted:
		return srv.dispatch(ctx, event, srv.handleSubscriptionDeleted)
	default:
		srv.log(ctx).Info("Unhandled webhook event type",
			slog.String("type", event.Type),
			slog.String("providerEventID", event.ProviderEventID),
		)
		if err := srv.billingEventRepo.MarkProcessed(ctx, event.ID); err != nil {
			return "", errors.Wrap(err, "failed to mark billing event processed")
		}

		return usecase.WebhookIgnored, nil
	}
}

func (srv *billingService) dispatch(
	ctx context.Context,
	event *entity.BillingEvent,
	handler func(ctx context.Context, object *providerObject) error,
) (usecase.WebhookOutcome, error) {
	object, err := parseProviderObject(event.Payload)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse %s payload", event.Type)
	}

	if err := handler(ctx, object); err != nil {
		return "", err
	}

	if err := srv.billingEventRepo.MarkProcessed(ctx, event.ID); err != nil {
		return "", errors.Wrap(err, "failed to mark billing event processed")
	}

	srv.log(ctx).Info("Webhook event processed",
		slog.String("type", event.Type),
		slog.String("providerEventID", event.ProviderEventID),
	)

	return usecase.WebhookProcessed, nil
}

// handleInvoicePaid marks the paying user's subscription active.
func (srv *billingService) handleInvoicePaid(ctx context.Context, object *providerObject) error {
	user, err := srv.findCustomer(ctx, object.Customer)
	if err != nil || user == nil {
		return err
	}

	if user.Subscription == nil {
		user.Subscription = &entity.Subscription{}
	}
	user.Subscription.Status = "active"

	return errors.Wrap(srv.userRepo.Update(ctx, user), "failed to update user after invoice.paid")
}

// handleSubscriptionChanged mirrors the provider's subscription state.
func (srv *billingService) handleSubscriptionChanged(ctx context.Context, object *providerObject) error {
	user, err := srv.findCustomer(ctx, object.Customer)
	if err != nil || user == nil {
		return err
	}

	user.Subscription = &entity.Subscription{
		PlanID:           object.PlanID(),
		Status:           object.Status,
		CurrentPeriodEnd: time.Unix(object.CurrentPeriodEnd, 0).UTC(),
	}

	return errors.Wrap(srv.userRepo.Update(ctx, user), "failed to update user subscription")
}

// handleSubscriptionDeleted clears the user's subscription.
func (srv *billingService) handleSubscriptionDeleted(ctx context.Context, object *providerObject) error {
	user, err := srv.findCustomer(ctx, object.Customer)
	if err != nil || user == nil {
		return err
	}

	user.Subscription = nil

	return errors.Wrap(srv.userRepo.Update(ctx, user), "failed to clear user subscription")
}

// findCustomer resolves the provider customer id to a local account.
// Unknown customers are logged and skipped rather than failed: the
// provider may push events for customers created outside this system.
func (srv *billingService) findCustomer(ctx context.Context, customerID string) (*entity.User, error) {
	if customerID == "" {
		srv.log(ctx).Warn("Webhook payload without customer id")

		return nil, nil
	}

	user, err := srv.userRepo.FindByStripeCustomerID(ctx, customerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Webhook for unknown customer", slog.String("customerID", customerID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by customer id")
	}

	return user, nil
}

// providerObject is the subset of the provider's event payload the
// handlers read: the object under data.object in the event envelope.
type providerObject struct {
	Customer         string `json:"customer"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
	Items            struct {
		Data []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"data"`
	} `json:"items"`
}

// PlanID returns the first line item's price id, if any.
func (o *providerObject) PlanID() string {
	if len(o.Items.Data) == 0 {
		return ""
	}

	return o.Items.Data[0].Price.ID
}

func parseProviderObject(payload []byte) (*providerObject, error) {
	var envelope struct {
		Data struct {
			Object providerObject `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data.Object, nil
}
