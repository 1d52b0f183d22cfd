package impl

import (
	"context"
	"encoding/base64"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminCatalogService(t *testing.T) (usecase.AdminCatalogUsecase, *mockRepo.MockProductRepository, *mockSvc.MockImageStore) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockImageStore := mockSvc.NewMockImageStore(t)
	service := NewAdminCatalogService(AdminCatalogServiceParams{
		ProductRepo: mockProductRepo,
		ImageStore:  mockImageStore,
		Logger:      newDiscardLogger(),
	})

	return service, mockProductRepo, mockImageStore
}

func TestAdminCatalogService_CreateProduct_WithImage(t *testing.T) {
	service, mockProductRepo, mockImageStore := newAdminCatalogService(t)

	ctx := context.Background()
	imageData := []byte{0x89, 0x50, 0x4e, 0x47}

	mockImageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", imageData).
		Return("https://cdn.example.com/products/abc.png", nil)

	var created *entity.Product
	mockProductRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			created = product
		}).
		Return(nil)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Title:            "Mechanical Keyboard",
		Category:         "electronics",
		Price:            4999,
		Quantity:         10,
		ImageBase64:      base64.StdEncoding.EncodeToString(imageData),
		ImageContentType: "image/png",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "https://cdn.example.com/products/abc.png", product.ImageURL)
	assert.Equal(t, entity.CategoryElectronics, product.Category)
}

func TestAdminCatalogService_CreateProduct_InvalidCategory(t *testing.T) {
	service, _, _ := newAdminCatalogService(t)

	ctx := context.Background()

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Title:    "Mystery Box",
		Category: "gadgets",
		Price:    999,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestAdminCatalogService_CreateProduct_ImageUploadFailure(t *testing.T) {
	service, _, mockImageStore := newAdminCatalogService(t)

	ctx := context.Background()

	mockImageStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", mock.AnythingOfType("[]uint8")).
		Return("", errors.New("bucket unavailable"))

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Title:            "Mechanical Keyboard",
		Category:         "electronics",
		Price:            4999,
		ImageBase64:      base64.StdEncoding.EncodeToString([]byte("img")),
		ImageContentType: "image/png",
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
}

func TestAdminCatalogService_UpdateProduct_ReplacesFields(t *testing.T) {
	service, mockProductRepo, _ := newAdminCatalogService(t)

	ctx := context.Background()
	product := newTestProduct(4999)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockProductRepo.EXPECT().
		Update(ctx, product).
		Return(nil)

	updated, err := service.UpdateProduct(ctx, product.ID, &usecase.UpdateProductInput{
		Title:    "Ergonomic Keyboard",
		Category: "electronics",
		Price:    5999,
		Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ergonomic Keyboard", updated.Title)
	assert.Equal(t, int64(5999), updated.Price)
	assert.Equal(t, 4, updated.Quantity)
}

func TestAdminCatalogService_DeleteProduct_RemovesImage(t *testing.T) {
	service, mockProductRepo, mockImageStore := newAdminCatalogService(t)

	ctx := context.Background()
	productID := newTestProduct(4999).ID

	mockProductRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	mockImageStore.EXPECT().
		Remove(ctx, mock.AnythingOfType("string")).
		Return(nil)

	err := service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}
