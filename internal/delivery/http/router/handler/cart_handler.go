package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the authenticated session-cart operations.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart returns the caller's current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// SetCart replaces the full cart contents.
func (h *CartHandler) SetCart(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.SetCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart payload")
	}

	cart, err := h.uc.SetCart(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// AddItem adds one product to the cart or bumps its quantity.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item payload")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added")
}

// RemoveItem removes one product from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// RemoveItems removes several products from the cart at once.
func (h *CartHandler) RemoveItems(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.RemoveCartItemsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid remove payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid remove payload")
	}

	cart, err := h.uc.RemoveItems(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Items removed")
}

// SetItemQuantity sets the quantity for one product already in the cart.
func (h *CartHandler) SetItemQuantity(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input usecase.SetCartQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity payload")
	}

	cart, err := h.uc.SetItemQuantity(c.Request().Context(), userID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}
