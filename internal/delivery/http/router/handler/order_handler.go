package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves the authenticated, own-resource order reads and
// item deletion.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListOwn returns all orders of the caller, newest first.
func (h *OrderHandler) ListOwn(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOwn returns one of the caller's orders.
func (h *OrderHandler) GetOwn(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOwn(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// DeleteOwnItem removes one line from one of the caller's orders.
func (h *OrderHandler) DeleteOwnItem(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order item id")
	}

	if err := h.uc.DeleteOwnItem(c.Request().Context(), userID, orderID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order item deleted")
}
