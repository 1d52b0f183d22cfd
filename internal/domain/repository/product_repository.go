package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Category entity.Category // Restrict to one category.
	Search   string          // Case-insensitive substring match on the title.
	Limit    int
	Offset   int
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Count returns the number of products matching the filter, ignoring pagination.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
