package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for billing event persistence.
var (
	ErrBillingEventNotFound = errors.New("billing event not found")
	ErrDuplicateEvent       = errors.New("billing event already recorded")
)

// BillingEventRepository is the log of payment-provider webhook
// deliveries. Rows are inserted unprocessed and marked processed once
// their handlers ran; they are never deleted.
type BillingEventRepository interface {
	// Create persists one delivery. Returns ErrDuplicateEvent when the
	// provider event id was recorded before.
	Create(ctx context.Context, event *entity.BillingEvent) error

	// FindByProviderEventID looks up a previously recorded delivery.
	FindByProviderEventID(ctx context.Context, providerEventID string) (*entity.BillingEvent, error)

	// MarkProcessed flags a recorded delivery as fully handled.
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}
