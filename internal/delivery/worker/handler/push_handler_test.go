package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/constants"
	"cakes/internal/domain/service"
	mockUsecase "cakes/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/cakes/subscriptions/order-events-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func encodeEvent(t *testing.T, event *service.OrderEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func servePush(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderEvent{
		Type:        service.OrderEventPlaced,
		OrderID:     "7f1c1c1e-5d4e-4d61-9a57-6f8d3c7c9b10",
		OrderNumber: "CK261015123456",
		UserID:      "0b8f4f7a-2c55-4b8e-9d0e-3f1f6e4b2a11",
		Status:      "pending",
		RequestID:   "from-event",
	}

	t.Run("processes event with attribute request id", func(t *testing.T) {
		h, notificationUC := newPushHandler(t, &config.Config{})
		notificationUC.EXPECT().HandleOrderEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-attributes"
		}), mock.MatchedBy(func(got *service.OrderEvent) bool {
			return got.Type == service.OrderEventPlaced && got.OrderNumber == "CK261015123456"
		})).Return(nil)

		rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "from-attributes"}), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to event request id", func(t *testing.T) {
		h, notificationUC := newPushHandler(t, &config.Config{})
		notificationUC.EXPECT().HandleOrderEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-event"
		}), mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, encodeEvent(t, event), nil), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failure asks for redelivery", func(t *testing.T) {
		h, notificationUC := newPushHandler(t, &config.Config{})
		notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(errors.New("sendgrid unavailable"))

		rec := servePush(h, pushBody(t, encodeEvent(t, event), nil), "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPushHandler_HandlePush_AcksMalformed(t *testing.T) {
	noType, err := json.Marshal(map[string]string{"order_number": "CK261015123456"})
	require.NoError(t, err)

	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "bad base64", body: pushBody(t, "%%%", nil)},
		{name: "bad event json", body: pushBody(t, base64.StdEncoding.EncodeToString([]byte("[1,2]")), nil)},
		{name: "event without type", body: pushBody(t, base64.StdEncoding.EncodeToString(noType), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body, "")

			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}}
	cfg.Env.Env = "production"
	event := &service.OrderEvent{Type: service.OrderEventVendorAssigned, OrderNumber: "CK261015123456"}

	tests := []struct {
		name          string
		authorization string
		payload       *idtoken.Payload
		validateErr   error
		wantStatus    int
	}{
		{
			name:          "valid token",
			authorization: "Bearer good",
			payload:       &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus:    http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "not bearer",
			authorization: "Basic Zm9vOmJhcg==",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "rejected by validator",
			authorization: "Bearer expired",
			validateErr:   errors.New("token expired"),
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "foreign issuer",
			authorization: "Bearer foreign",
			payload:       &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "unverified email",
			authorization: "Bearer unverified",
			payload:       &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)
			h.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://notifier.example.com/push", audience)

				return tt.payload, tt.validateErr
			}
			if tt.wantStatus == http.StatusOK {
				notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil)
			}

			rec := servePush(h, pushBody(t, encodeEvent(t, event), nil), tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
