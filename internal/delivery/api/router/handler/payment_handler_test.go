package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockUsecase "cakes/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentHandler(t *testing.T) (*PaymentHandler, *mockUsecase.MockPaymentUsecase) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC, Logger: slog.Default()}), paymentUC
}

func TestPaymentHandler_Callback(t *testing.T) {
	h, paymentUC := newPaymentHandler(t)

	paymentUC.EXPECT().HandleCallback(mock.Anything, "abc123###1", "eyJzdWNjZXNzIjp0cnVlfQ==").
		Return(&entity.Order{
			OrderNumber:   "CK261015123456",
			Status:        entity.OrderStatusConfirmed,
			PaymentStatus: entity.PaymentStatusPaid,
		}, nil)

	c, rec := newTestContext(t, testRequest{
		method:  http.MethodPost,
		target:  "/api/payments/phonepe/callback",
		body:    PaymentCallbackRequest{Response: "eyJzdWNjZXNzIjp0cnVlfQ=="},
		headers: map[string]string{headerXVerify: "abc123###1"},
	})

	require.NoError(t, h.Callback(c))

	var status PaymentStatusResponse
	decodeData(t, rec, &status)
	assert.Equal(t, entity.PaymentStatusPaid, status.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, status.Status)
}

func TestPaymentHandler_Callback_BadChecksum(t *testing.T) {
	h, paymentUC := newPaymentHandler(t)

	paymentUC.EXPECT().HandleCallback(mock.Anything, "", "payload").Return(nil, domainerrors.ErrPaymentChecksum)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/payments/phonepe/callback",
		body:   PaymentCallbackRequest{Response: "payload"},
	})

	err := h.Callback(c)

	assert.True(t, errors.Is(err, domainerrors.ErrPaymentChecksum))
}

func TestPaymentHandler_Callback_EmptyResponse(t *testing.T) {
	h, _ := newPaymentHandler(t)
	c, _ := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/payments/phonepe/callback",
		body:   PaymentCallbackRequest{},
	})

	assert.Error(t, h.Callback(c))
}
