package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminOrderHandler serves the cross-user order operations.
type AdminOrderHandler struct {
	uc usecase.AdminOrderUsecase
}

// NewAdminOrderHandler is the constructor for AdminOrderHandler, injected by Fx.
func NewAdminOrderHandler(uc usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// ListOrders returns a page of all orders with a consistent total.
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	var input usecase.ListOrdersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing query")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing query")
	}

	output, err := h.uc.ListOrders(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// DeleteOrder removes an order and all of its items.
func (h *AdminOrderHandler) DeleteOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

// DeleteOrderItem removes one line; removing the last line deletes the order.
func (h *AdminOrderHandler) DeleteOrderItem(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order item id")
	}

	if err := h.uc.DeleteOrderItem(c.Request().Context(), orderID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order item deleted")
}
