package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionUserID reads the authenticated caller's id set by the auth
// middleware. Routes using it must be registered behind Authenticate.
func sessionUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "session user missing")
	}

	return userID, nil
}
