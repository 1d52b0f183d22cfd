package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminProductHandler serves the admin-only catalog mutations.
type AdminProductHandler struct {
	uc usecase.AdminCatalogUsecase
}

// NewAdminProductHandler is the constructor for AdminProductHandler, injected by Fx.
func NewAdminProductHandler(uc usecase.AdminCatalogUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// CreateProduct stores a new catalog entry.
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product payload")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct replaces an existing catalog entry.
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product payload")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a catalog entry.
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
