package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return cfg
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "client id kept", header: "abc-123_x.y", wantKept: true},
		{name: "missing id minted", header: ""},
		{name: "newline rejected", header: "abc\ninjected"},
		{name: "too long rejected", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/cakes", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})

			require.NoError(t, handler(c))
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.wantKept {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func TestRequestIDMiddleware_CarriesClient(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Header.Set("User-Agent", "CakesApp/2.1 (Android 14)")
	c := e.NewContext(req, httptest.NewRecorder())

	var client deliverycontext.Client
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		client = deliverycontext.GetClientFromContext(c.Request().Context())

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "CakesApp/2.1 (Android 14)", client.UserAgent)
	assert.Equal(t, "192.0.2.1", client.IP)
}

func TestLoggerMiddleware_RendersErrorBeforeLogging(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(NewLoggerMiddleware(newLogger(&buf), debugConfig(false)).Handle)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, buf.String(), `"status":503`)
	assert.Contains(t, buf.String(), `"route":"/boom"`)
}

func TestLoggerMiddleware_QuietUnlessDebug(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		wantLog bool
	}{
		{name: "success without debug", debug: false, path: "/ok"},
		{name: "success with debug", debug: true, path: "/ok", wantLog: true},
		{name: "health with debug", debug: true, path: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(NewLoggerMiddleware(newLogger(&buf), debugConfig(tt.debug)).Handle)
			ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			e.GET("/ok", ok)
			e.GET("/health", ok)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "HTTP request"))
		})
	}
}
