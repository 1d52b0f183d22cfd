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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts_DefaultsAndFilter(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: mockProductRepo,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	products := []*entity.Product{newTestProduct(4999), newTestProduct(1299)}

	expectedFilter := repository.ProductFilter{
		Category: entity.CategoryElectronics,
		Search:   "keyboard",
		Limit:    defaultPageSize,
		Offset:   0,
	}

	mockProductRepo.EXPECT().
		Count(ctx, expectedFilter).
		Return(int64(2), nil)

	mockProductRepo.EXPECT().
		List(ctx, expectedFilter).
		Return(products, nil)

	output, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Category: "electronics",
		Search:   "keyboard",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, defaultPageSize, output.PageSize)
	assert.Len(t, output.Products, 2)
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: mockProductRepo,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	expectedFilter := repository.ProductFilter{
		Limit:  10,
		Offset: 20,
	}

	mockProductRepo.EXPECT().
		Count(ctx, expectedFilter).
		Return(int64(42), nil)

	mockProductRepo.EXPECT().
		List(ctx, expectedFilter).
		Return([]*entity.Product{}, nil)

	output, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Page:     3,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), output.Total)
	assert.Equal(t, 3, output.Page)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: mockProductRepo,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, productID)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_GetProduct_RepositoryFailure(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: mockProductRepo,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, errors.New("connection reset"))

	product, err := service.GetProduct(ctx, productID)
	assert.Nil(t, product)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrProductNotFound)
}
