package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	service   usecase.BillingUsecase
	eventRepo *mockRepo.MockBillingEventRepository
	userRepo  *mockRepo.MockUserRepository
}

func newBillingFixture(t *testing.T) *billingFixture {
	f := &billingFixture{
		eventRepo: mockRepo.NewMockBillingEventRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
	f.service = NewBillingService(BillingServiceParams{
		BillingEventRepo: f.eventRepo,
		UserRepo:         f.userRepo,
		Logger:           newDiscardLogger(),
	})

	return f
}

func TestBillingService_ProcessEvent_Duplicate(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(repository.ErrDuplicateEvent)

	f.eventRepo.EXPECT().
		FindByProviderEventID(ctx, "evt_1").
		Return(&entity.BillingEvent{
			ID:              uuid.New(),
			ProviderEventID: "evt_1",
			Type:            entity.EventInvoicePaid,
			Payload:         []byte(`{"data":{"object":{"customer":"cus_123"}}}`),
			Processed:       true,
		}, nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_1",
		Type:            entity.EventInvoicePaid,
		Payload:         []byte(`{"data":{"object":{"customer":"cus_123"}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookDuplicate, outcome)
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBillingService_ProcessEvent_RedeliveryAfterFailureIsReprocessed(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_123"
	payload := []byte(`{"data":{"object":{"customer":"cus_123"}}}`)

	var recorded *entity.BillingEvent
	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Run(func(_ context.Context, event *entity.BillingEvent) {
			recorded = event
		}).
		Return(nil).
		Once()

	f.userRepo.EXPECT().
		FindByStripeCustomerID(ctx, "cus_123").
		Return(user, nil).
		Twice()

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(errors.New("database unavailable")).
		Once()

	input := &usecase.WebhookEventInput{
		ProviderEventID: "evt_retry",
		Type:            entity.EventInvoicePaid,
		Payload:         payload,
	}

	// First delivery records the event, then fails before completion.
	_, err := f.service.ProcessEvent(ctx, input)
	require.Error(t, err)
	require.NotNil(t, recorded)
	assert.False(t, recorded.Processed)

	// The provider redelivers. The stored event is still unprocessed,
	// so the handlers run again and the subscription change lands.
	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(repository.ErrDuplicateEvent).
		Once()

	f.eventRepo.EXPECT().
		FindByProviderEventID(ctx, "evt_retry").
		Return(recorded, nil)

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil).
		Once()

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, recorded.ID).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookProcessed, outcome)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, "active", user.Subscription.Status)
}

func TestBillingService_ProcessEvent_UnknownTypeRecordedAndIgnored(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()

	var recorded *entity.BillingEvent
	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Run(func(_ context.Context, event *entity.BillingEvent) {
			recorded = event
		}).
		Return(nil)

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_2",
		Type:            "charge.refunded",
		Payload:         []byte(`{"data":{"object":{}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookIgnored, outcome)

	// Unknown types still land in the event log.
	require.NotNil(t, recorded)
	assert.Equal(t, "evt_2", recorded.ProviderEventID)
	assert.Equal(t, "charge.refunded", recorded.Type)
}

func TestBillingService_ProcessEvent_InvoicePaid(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_123"

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByStripeCustomerID(ctx, "cus_123").
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_3",
		Type:            entity.EventInvoicePaid,
		Payload:         []byte(`{"data":{"object":{"customer":"cus_123"}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookProcessed, outcome)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, "active", user.Subscription.Status)
}

func TestBillingService_ProcessEvent_SubscriptionUpdated(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_123"
	periodEnd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByStripeCustomerID(ctx, "cus_123").
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	payload := []byte(`{"data":{"object":{
		"customer":"cus_123",
		"status":"past_due",
		"current_period_end":1790726400,
		"items":{"data":[{"price":{"id":"price_basic"}}]}
	}}}`)

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_4",
		Type:            entity.EventSubscriptionUpdated,
		Payload:         payload,
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookProcessed, outcome)
	require.NotNil(t, user.Subscription)
	assert.Equal(t, "past_due", user.Subscription.Status)
	assert.Equal(t, "price_basic", user.Subscription.PlanID)
	assert.Equal(t, periodEnd, user.Subscription.CurrentPeriodEnd)
}

func TestBillingService_ProcessEvent_SubscriptionDeleted(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()
	user := newTestUser()
	user.StripeCustomerID = "cus_123"
	user.Subscription = &entity.Subscription{PlanID: "price_basic", Status: "active"}

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByStripeCustomerID(ctx, "cus_123").
		Return(user, nil)

	f.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_5",
		Type:            entity.EventSubscriptionDeleted,
		Payload:         []byte(`{"data":{"object":{"customer":"cus_123"}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookProcessed, outcome)
	assert.Nil(t, user.Subscription)
}

func TestBillingService_ProcessEvent_UnknownCustomerIsSkipped(t *testing.T) {
	f := newBillingFixture(t)

	ctx := context.Background()

	f.eventRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BillingEvent")).
		Return(nil)

	f.userRepo.EXPECT().
		FindByStripeCustomerID(ctx, "cus_ghost").
		Return(nil, repository.ErrUserNotFound)

	f.eventRepo.EXPECT().
		MarkProcessed(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	outcome, err := f.service.ProcessEvent(ctx, &usecase.WebhookEventInput{
		ProviderEventID: "evt_6",
		Type:            entity.EventInvoicePaid,
		Payload:         []byte(`{"data":{"object":{"customer":"cus_ghost"}}}`),
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.WebhookProcessed, outcome)
}
