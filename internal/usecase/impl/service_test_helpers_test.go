package impl

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProduct(price int64) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Title:    "Mechanical Keyboard",
		Category: entity.CategoryElectronics,
		Price:    price,
		Quantity: 10,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Email:  "shopper@example.com",
		Name:   "Shopper",
		Role:   entity.RoleUser,
		Active: true,
	}
}

// expectTransaction wires a TransactionManager mock so Execute runs the
// given function against a single shared repository factory.
func expectTransaction(t interface {
	mock.TestingT
	Cleanup(func())
}) (*mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager, factory
}
