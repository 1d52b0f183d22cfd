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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order together with all of its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves all orders of one user with their items, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomains(orderMs), nil
}

// List retrieves a page of all orders with their items, newest first.
func (repo *orderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderMs), nil
}

// Count returns the total number of orders.
func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// FindItemByID retrieves a single order item.
func (repo *orderRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item by id")
	}

	item := toOrderItemDomain(&itemM)

	return &item, nil
}

// DeleteItem removes one order item.
func (repo *orderRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.OrderItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// CountItems returns the number of items remaining on an order.
func (repo *orderRepository) CountItems(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count order items")
	}

	return count, nil
}

// Delete removes an order and all of its items.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Items first: the schema cascade covers fresh databases, this covers the rest.
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order items")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:        orderM.ID,
		UserID:    orderM.UserID,
		Total:     orderM.Total,
		Items:     make([]*entity.OrderItem, 0, len(orderM.Items)),
		CreatedAt: orderM.CreatedAt,
		UpdatedAt: orderM.UpdatedAt,
	}
	for i := range orderM.Items {
		item := toOrderItemDomain(&orderM.Items[i])
		order.Items = append(order.Items, &item)
	}

	return order
}

func toOrderDomains(orderMs []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders
}

func toOrderItemDomain(itemM *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:        itemM.ID,
		OrderID:   itemM.OrderID,
		ProductID: itemM.ProductID,
		Quantity:  itemM.Quantity,
		UnitPrice: itemM.UnitPrice,
		Archived:  itemM.Archived,
		CreatedAt: itemM.CreatedAt,
	}
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:     order.ID,
		UserID: order.UserID,
		Total:  order.Total,
		Items:  make([]model.OrderItemModel, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Archived:  item.Archived,
		})
	}

	return orderM
}
