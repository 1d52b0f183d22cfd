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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := applyProductFilter(repo.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Count returns the number of products matching the filter, ignoring pagination.
func (repo *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64
	err := applyProductFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("title", "description", "category", "price", "image_url", "rating", "quantity").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// applyProductFilter narrows a query to the filter's category and title search.
func applyProductFilter(tx *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category.String())
	}
	if filter.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	return tx
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ID,
		Title:       productM.Title,
		Description: productM.Description,
		Category:    entity.Category(productM.Category),
		Price:       productM.Price,
		ImageURL:    productM.ImageURL,
		Rating:      productM.Rating,
		Quantity:    productM.Quantity,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Category:    product.Category.String(),
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Rating:      product.Rating,
		Quantity:    product.Quantity,
	}
}
