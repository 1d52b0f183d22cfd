// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByStripeCustomerID retrieves the user owning the given payment-provider customer id.
func (repo *userRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("stripe_customer_id = ?", customerID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by stripe customer id")
	}

	return toUserDomain(&userM), nil
}

// List retrieves a page of users ordered by creation time.
func (repo *userRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("email", "name", "role", "active", "password_hash", "stripe_customer_id",
			"subscription_plan_id", "subscription_status", "subscription_period_end").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:               userM.ID,
		Email:            userM.Email,
		Name:             userM.Name,
		Role:             entity.Role(userM.Role),
		Active:           userM.Active,
		PasswordHash:     userM.PasswordHash,
		StripeCustomerID: userM.StripeCustomerID,
		CreatedAt:        userM.CreatedAt,
		UpdatedAt:        userM.UpdatedAt,
	}

	if userM.SubscriptionStatus != "" {
		sub := &entity.Subscription{
			PlanID: userM.SubscriptionPlanID,
			Status: userM.SubscriptionStatus,
		}
		if userM.SubscriptionPeriodEnd != nil {
			sub.CurrentPeriodEnd = *userM.SubscriptionPeriodEnd
		}
		user.Subscription = sub
	}

	return user
}

// fromUserDomain maps a pure domain entity to the persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role.String(),
		Active:           user.Active,
		PasswordHash:     user.PasswordHash,
		StripeCustomerID: user.StripeCustomerID,
	}

	if user.Subscription != nil {
		userM.SubscriptionPlanID = user.Subscription.PlanID
		userM.SubscriptionStatus = user.Subscription.Status
		if !user.Subscription.CurrentPeriodEnd.IsZero() {
			periodEnd := user.Subscription.CurrentPeriodEnd
			userM.SubscriptionPeriodEnd = &periodEnd
		}
	}

	return userM
}
