// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput narrows and pages the public catalog listing.
type ListProductsInput struct {
	Category string `query:"category" validate:"omitempty,oneof=electronics clothing books home sports toys"`
	Search   string `query:"search" validate:"omitempty,max=100"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProductListOutput is one page of the catalog plus the unpaged total.
type ProductListOutput struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CatalogUsecase defines the public (unauthenticated) catalog reads.
type CatalogUsecase interface {
	// ListProducts returns a filtered, paginated catalog page.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// GetProduct returns one product or a not-found error.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}
