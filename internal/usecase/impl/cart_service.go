package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. It is a thin shell
// around the pure entity.Cart transitions: load snapshot, transition, save.
type cartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartStore   repository.CartStore
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the caller's current cart; an empty cart if none exists.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, userID)
	if err != nil {
		return entity.Cart{}, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// SetCart replaces the full cart contents with fresh product snapshots.
func (srv *cartService) SetCart(ctx context.Context, userID uuid.UUID, input *usecase.SetCartInput) (entity.Cart, error) {
	items := make([]entity.CartItem, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := srv.snapshotItem(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return entity.Cart{}, err
		}
		items = append(items, item)
	}

	cart := entity.Cart{}.SetItems(items)
	if err := srv.cartStore.Save(ctx, userID, cart); err != nil {
		return entity.Cart{}, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}

// AddItem adds one product to the cart, snapshotting it from the catalog.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (entity.Cart, error) {
	item, err := srv.snapshotItem(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return entity.Cart{}, err
	}

	return srv.transition(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.Add(item)
	})
}

// RemoveItem removes one product by id; absent ids are a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (entity.Cart, error) {
	return srv.transition(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.Remove(productID)
	})
}

// RemoveItems removes several products by id.
func (srv *cartService) RemoveItems(ctx context.Context, userID uuid.UUID, input *usecase.RemoveCartItemsInput) (entity.Cart, error) {
	return srv.transition(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.RemoveMany(input.ProductIDs)
	})
}

// SetItemQuantity sets the quantity for one product; absent ids are a no-op.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID, productID uuid.UUID, input *usecase.SetCartQuantityInput) (entity.Cart, error) {
	return srv.transition(ctx, userID, func(cart entity.Cart) entity.Cart {
		return cart.SetQuantity(productID, input.Quantity)
	})
}

// transition loads the cart, applies one pure transition and saves the result.
func (srv *cartService) transition(ctx context.Context, userID uuid.UUID, fn func(entity.Cart) entity.Cart) (entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, userID)
	if err != nil {
		return entity.Cart{}, errors.Wrap(err, "failed to load cart")
	}

	next := fn(cart)
	if err := srv.cartStore.Save(ctx, userID, next); err != nil {
		srv.log(ctx).Error("Failed to save cart", slog.Any("userID", userID), slog.Any("error", err))

		return entity.Cart{}, errors.Wrap(err, "failed to save cart")
	}

	return next, nil
}

// snapshotItem builds a cart line from the current catalog state.
func (srv *cartService) snapshotItem(ctx context.Context, productID uuid.UUID, quantity int) (entity.CartItem, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return entity.CartItem{}, domainerrors.ErrProductNotFound
		}

		return entity.CartItem{}, errors.Wrap(err, "failed to find product by id")
	}

	return entity.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	}, nil
}
