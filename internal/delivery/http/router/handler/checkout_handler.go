package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler converts the session cart into an order and hands
// payment off to the provider.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout creates an order from the caller's cart and opens a payment session.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Checkout(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Checkout created")
}

// BillingPortal opens the provider's self-service billing portal.
func (h *CheckoutHandler) BillingPortal(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	portalURL, err := h.uc.BillingPortal(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"portal_url": portalURL}, "")
}
