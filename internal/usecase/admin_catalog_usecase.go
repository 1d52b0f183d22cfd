package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput is the admin product creation payload. The image is
// accepted as a base64 data upload and stored through the ImageStore.
type CreateProductInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Category    string  `json:"category" validate:"required,oneof=electronics clothing books home sports toys"`
	Price       int64   `json:"price" validate:"required,min=1"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	// ImageBase64 is the raw image content, base64 encoded. Optional.
	ImageBase64      string `json:"image_base64" validate:"omitempty,base64"`
	ImageContentType string `json:"image_content_type" validate:"required_with=ImageBase64,omitempty,oneof=image/png image/jpeg image/webp"`
}

// UpdateProductInput mirrors CreateProductInput for full replacement updates.
type UpdateProductInput struct {
	Title            string  `json:"title" validate:"required,min=1,max=200"`
	Description      string  `json:"description" validate:"max=5000"`
	Category         string  `json:"category" validate:"required,oneof=electronics clothing books home sports toys"`
	Price            int64   `json:"price" validate:"required,min=1"`
	Rating           float64 `json:"rating" validate:"min=0,max=5"`
	Quantity         int     `json:"quantity" validate:"min=0"`
	ImageBase64      string  `json:"image_base64" validate:"omitempty,base64"`
	ImageContentType string  `json:"image_content_type" validate:"required_with=ImageBase64,omitempty,oneof=image/png image/jpeg image/webp"`
}

// AdminCatalogUsecase defines the admin-only catalog mutations.
type AdminCatalogUsecase interface {
	// CreateProduct stores a new catalog entry (and its image, when given).
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct replaces an existing catalog entry.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog entry.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
