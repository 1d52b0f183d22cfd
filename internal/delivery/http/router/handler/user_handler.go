package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves sign-in and the self-service account operations.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GoogleSignIn verifies the identity provider's ID token and issues a
// session token pair, provisioning the account on first sign-in.
func (h *UserHandler) GoogleSignIn(c echo.Context) error {
	var input usecase.GoogleSignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sign-in payload")
	}

	output, err := h.uc.SignInWithGoogle(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sign-in successful")
}

// Login authenticates a locally bootstrapped account with a password.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login payload")
	}

	output, err := h.uc.LoginWithPassword(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid refresh payload")
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed")
}

// GetProfile returns the caller's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile applies the self-service profile mutation.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile payload")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// DeleteAccount removes the caller's own account.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
