package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"
	mockservice "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, m *AuthMiddleware, authHeader string, wrap ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"reached": "true"})
	}

	chain := m.Authenticate(func(c echo.Context) error {
		h := next
		for i := len(wrap) - 1; i >= 0; i-- {
			h = wrap[i](h)
		}

		return h(c)
	})

	require.NoError(t, chain(c))

	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("bad-token").
		Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InactiveAccount(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("inactive-token").
		Return(&service.SessionClaims{UserID: uuid.New(), Role: "user", Active: false}, nil)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Bearer inactive-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("good-token").
		Return(&service.SessionClaims{UserID: uuid.New(), Role: "user", Active: true}, nil)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reached")
}

func TestRequireAdmin_UserRoleForbidden(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("user-token").
		Return(&service.SessionClaims{UserID: uuid.New(), Role: "user", Active: true}, nil)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Bearer user-token", m.RequireAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AdminRoleAllowed(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("admin-token").
		Return(&service.SessionClaims{UserID: uuid.New(), Role: "admin", Active: true}, nil)
	m := NewAuthMiddleware(tokenSvc)

	rec := invokeAuth(t, m, "Bearer admin-token", m.RequireAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
}
