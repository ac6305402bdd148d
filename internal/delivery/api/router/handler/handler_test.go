package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/response"
	"cakes/internal/delivery/api/validator"
	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method  string
	target  string
	body    any
	userID  uuid.UUID
	roles   entity.Roles
	params  map[string]string
	headers map[string]string
}

func newTestContext(t *testing.T, tr testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	if tr.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(tr.body))
	}

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(tr.method, tr.target, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range tr.headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if tr.userID != uuid.Nil {
		roles := tr.roles
		if roles == nil {
			roles = entity.Roles{entity.RoleCustomer}
		}
		middleware.SetIdentity(c, tr.userID, roles)
	}

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for k, v := range tr.params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

// decodeData unmarshals the data member of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage   `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Meta.RequestID)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/health"})

	require.NoError(t, HealthCheck(c))

	var body map[string]string
	decodeData(t, rec, &body)
	require.Equal(t, "ok", body["status"])
}
