package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	"cakes/internal/domain/service"
	mockService "cakes/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_StoresCaller(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"admin", "bogus"},
		Type:   service.TokenTypeAccess,
	}, nil)

	c, _ := newAuthContext("Bearer good")
	called := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		called = true

		gotID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)

		roles, ok := GetRoles(c)
		require.True(t, ok)
		assert.Equal(t, entity.Roles{entity.RoleAdmin}, roles)

		ctxID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, userID, ctxID)

		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(tokenSvc *mockService.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not bearer", authorization: "Basic abc"},
		{
			name:          "invalid token",
			authorization: "Bearer bad",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, assert.AnError)
			},
		},
		{
			name:          "refresh token",
			authorization: "Bearer refresh",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("refresh").Return(&service.Claims{
					UserID: uuid.New(),
					Type:   service.TokenTypeRefresh,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			c, rec := newAuthContext(tt.authorization)
			handler := NewAuthMiddleware(tokenSvc).Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRoles(t *testing.T) {
	m := NewAuthMiddleware(nil)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("any listed role passes", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleVendor})

		require.NoError(t, m.RequireRoles(entity.RoleAdmin, entity.RoleVendor)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyRoles, entity.Roles{entity.RoleCustomer})

		require.NoError(t, m.RequireRoles(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated is forbidden", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRoles(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
