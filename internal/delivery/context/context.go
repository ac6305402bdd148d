// Package context carries request-scoped values (request ID, caller, logger) from the delivery
// layer down to usecases and infra adapters.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
	userIDKey
	clientKey
)

// HeaderXRequestID is the header a request ID is read from and echoed back on.
const HeaderXRequestID = "X-Request-Id"

// echo.Context store key for the request ID.
const echoRequestIDKey = "request_id"

// GetRequestID returns the request ID stored on c, or a fresh one when the request never got one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithUserID returns ctx carrying the authenticated caller. The request logger, when present,
// is extended with the user ID so every later log line names who acted.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("userID", userID.String())))
	}

	return ctx
}

// GetUserIDFromContext returns the authenticated caller carried by ctx.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)

	return userID, ok
}

// AttachUser records the authenticated caller on the request behind c.
func AttachUser(c echo.Context, userID uuid.UUID) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
}

// Client describes the device behind a request. Sessions are labelled with it.
type Client struct {
	UserAgent string
	IP        string
}

// WithClient returns ctx carrying the requesting client.
func WithClient(ctx context.Context, client Client) context.Context {
	return context.WithValue(ctx, clientKey, client)
}

// GetClientFromContext returns the requesting client, or the zero Client outside a request.
func GetClientFromContext(ctx context.Context) Client {
	client, _ := ctx.Value(clientKey).(Client)

	return client
}
