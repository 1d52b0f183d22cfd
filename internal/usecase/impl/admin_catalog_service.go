package impl

import (
	"context"
	"encoding/base64"
	"fmt"
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

// adminCatalogService implements the admin-only catalog mutations.
// Product images arrive base64-encoded in the request body and are
// handed to the ImageStore; only the resulting public URL is persisted.
type adminCatalogService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// AdminCatalogServiceParams holds dependencies for AdminCatalogService, injected by Fx.
type AdminCatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewAdminCatalogService is the constructor for adminCatalogService.
func NewAdminCatalogService(params AdminCatalogServiceParams) usecase.AdminCatalogUsecase {
	return &adminCatalogService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *adminCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores a new catalog entry (and its image, when given).
func (srv *adminCatalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		Price:       input.Price,
		Rating:      input.Rating,
		Quantity:    input.Quantity,
	}

	if input.ImageBase64 != "" {
		url, err := srv.storeImage(ctx, product.ID, input.ImageBase64, input.ImageContentType)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// UpdateProduct replaces an existing catalog entry.
func (srv *adminCatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Category = category
	product.Price = input.Price
	product.Rating = input.Rating
	product.Quantity = input.Quantity

	if input.ImageBase64 != "" {
		url, err := srv.storeImage(ctx, product.ID, input.ImageBase64, input.ImageContentType)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog entry and its stored image.
func (srv *adminCatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	// Image removal is best-effort; a dangling object costs nothing.
	if err := srv.imageStore.Remove(ctx, imageObjectName(id)); err != nil {
		srv.log(ctx).Warn("Failed to remove product image", slog.Any("error", err))
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// storeImage decodes the base64 upload and writes it to the image store.
func (srv *adminCatalogService) storeImage(ctx context.Context, productID uuid.UUID, encoded, contentType string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domainerrors.ErrValidationFailed
	}

	url, err := srv.imageStore.Save(ctx, imageObjectName(productID), contentType, data)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.Any("error", err))

		return "", domainerrors.ErrImageUploadFailed
	}

	return url, nil
}

// imageObjectName derives the stable object key for a product's image.
func imageObjectName(productID uuid.UUID) string {
	return fmt.Sprintf("products/%s", productID)
}
