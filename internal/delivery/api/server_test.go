package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cakes/config"
	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/response"
	"cakes/internal/delivery/api/router"
	"cakes/internal/delivery/api/router/handler"
	"cakes/internal/domain/entity"
	"cakes/internal/domain/service"
	mockService "cakes/internal/mocks/service"
	mockUsecase "cakes/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	tokenSvc *mockService.MockTokenService
	statsUC  *mockUsecase.MockStatsUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Storage: &config.StorageConfig{MaxUploadBytes: 1 << 20}}
	cfg.HTTP.MaxRequestBodySize = "1M"

	tokenSvc := mockService.NewMockTokenService(t)
	statsUC := mockUsecase.NewMockStatsUsecase(t)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	params := router.RouterParams{
		AuthHandler:     &handler.AuthHandler{},
		ProfileHandler:  &handler.ProfileHandler{},
		DeviceHandler:   &handler.DeviceHandler{},
		CatalogHandler:  &handler.CatalogHandler{},
		LocationHandler: &handler.LocationHandler{},
		PromoHandler:    &handler.PromoHandler{},
		OrderHandler:    &handler.OrderHandler{},
		DispatchHandler: &handler.DispatchHandler{},
		PaymentHandler:  &handler.PaymentHandler{},
		WalletHandler:   &handler.WalletHandler{},
		ReviewHandler:   &handler.ReviewHandler{},
		ReminderHandler: &handler.ReminderHandler{},
		CMSHandler:      &handler.CMSHandler{},
		UploadHandler:   &handler.UploadHandler{},
		StatsHandler:    handler.NewStatsHandler(statsUC),
		RealtimeHandler: handler.NewRealtimeHandler(handler.RealtimeHandlerParams{
			AuthMiddleware: authMiddleware,
			Config:         cfg,
			Logger:         logger,
		}),
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}

	return &testServer{
		echo:     newEcho(cfg, logger, params),
		tokenSvc: tokenSvc,
		statsUC:  statsUC,
	}
}

func (s *testServer) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) expectToken(token string, roles ...string) uuid.UUID {
	userID := uuid.New()
	s.tokenSvc.EXPECT().ValidateToken(token).
		Return(&service.Claims{UserID: userID, Roles: roles, Type: service.TokenTypeAccess}, nil)

	return userID
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	return body.Error.Code
}

func TestServer_HealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_CustomerRouteRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/orders", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
}

func TestServer_AdminRouteRejectsCustomer(t *testing.T) {
	s := newTestServer(t)
	s.expectToken("customer-token", string(entity.RoleCustomer))

	rec := s.do(http.MethodGet, "/api/admin/stats", "customer-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", errorCode(t, rec))
}

func TestServer_AdminStats(t *testing.T) {
	s := newTestServer(t)
	s.expectToken("admin-token", string(entity.RoleAdmin))
	s.statsUC.EXPECT().Dashboard(mock.Anything).Return(&entity.DashboardStats{}, nil)

	rec := s.do(http.MethodGet, "/api/admin/stats", "admin-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UsecaseErrorRendered(t *testing.T) {
	s := newTestServer(t)
	s.expectToken("admin-token", string(entity.RoleAdmin))
	s.statsUC.EXPECT().Dashboard(mock.Anything).Return(nil, errors.New("connection refused"))

	rec := s.do(http.MethodGet, "/api/admin/stats", "admin-token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestServer_DeliveryRouteRejectsVendor(t *testing.T) {
	s := newTestServer(t)
	s.expectToken("vendor-token", string(entity.RoleVendor))

	rec := s.do(http.MethodGet, "/api/delivery/orders", "vendor-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_RealtimeRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/ws/admin", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(strings.Repeat("x", 2<<20)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_RealtimeRejectsWrongRole(t *testing.T) {
	s := newTestServer(t)
	s.expectToken("rider-token", string(entity.RoleDeliveryBoy))

	rec := s.do(http.MethodGet, "/ws/admin?token=rider-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
