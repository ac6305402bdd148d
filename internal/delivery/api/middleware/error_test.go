package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cakes/internal/delivery/api/response"
	"cakes/internal/delivery/api/validator"
	domainerrors "cakes/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/orders", nil), rec)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrPromoCodeExpired, "failed to price cart")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PROMO_CODE_EXPIRED", body.Error.Code)
	assert.Equal(t, "Promo code has expired", body.Error.Message)
}

func TestHandleHTTPError_AppErrorDetails(t *testing.T) {
	err := domainerrors.ErrInvalidWeight.WithDetails("2kg")

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "2kg", body.Error.Details)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	tests := []struct {
		name     string
		err      *echo.HTTPError
		wantCode string
	}{
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "unknown route", err: echo.ErrNotFound, wantCode: "ROUTE_NOT_FOUND"},
		{name: "other status", err: echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), wantCode: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.err.Code, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleHTTPError_ValidationError(t *testing.T) {
	req := struct {
		Code string `json:"code" validate:"required"`
	}{}
	err := validator.New().Validate(&req)

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, map[string]any{"code": "required"}, body.Error.Details)
}

func TestHandleHTTPError_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
