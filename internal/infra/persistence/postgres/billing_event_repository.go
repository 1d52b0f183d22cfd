package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// billingEventRepository implements the append-only webhook delivery log.
type billingEventRepository struct {
	db *gorm.DB
}

// NewBillingEventRepository is the constructor for billingEventRepository.
func NewBillingEventRepository(db *gorm.DB) repository.BillingEventRepository {
	return &billingEventRepository{db: db}
}

// Create persists one delivery. The unique index on provider_event_id
// turns a redelivery into ErrDuplicateEvent.
func (repo *billingEventRepository) Create(ctx context.Context, event *entity.BillingEvent) error {
	eventM := &model.BillingEventModel{
		ID:              event.ID,
		ProviderEventID: event.ProviderEventID,
		Type:            event.Type,
		Payload:         event.Payload,
		Processed:       event.Processed,
		ReceivedAt:      event.ReceivedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create billing event")
	}

	event.ID = eventM.ID

	return nil
}

// FindByProviderEventID looks up a previously recorded delivery.
func (repo *billingEventRepository) FindByProviderEventID(ctx context.Context, providerEventID string) (*entity.BillingEvent, error) {
	var eventM model.BillingEventModel
	err := repo.db.WithContext(ctx).
		Where("provider_event_id = ?", providerEventID).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBillingEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find billing event")
	}

	return &entity.BillingEvent{
		ID:              eventM.ID,
		ProviderEventID: eventM.ProviderEventID,
		Type:            eventM.Type,
		Payload:         eventM.Payload,
		Processed:       eventM.Processed,
		ReceivedAt:      eventM.ReceivedAt,
	}, nil
}

// MarkProcessed flags a recorded delivery as fully handled.
func (repo *billingEventRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.BillingEventModel{}).
		Where("id = ?", id).
		Update("processed", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark billing event processed")
	}

	return nil
}
