package handler

import (
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// headerXVerify carries the PhonePe checksum.
const headerXVerify = "X-VERIFY"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the PhonePe payment flow.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// InitiatePaymentRequest starts paying for an order.
type InitiatePaymentRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
}

// PaymentCallbackRequest is the server-to-server callback PhonePe posts.
type PaymentCallbackRequest struct {
	Response string `json:"response" validate:"required"`
}

// InitiatePaymentResponse tells the client where to pay.
type InitiatePaymentResponse struct {
	OrderNumber           string `json:"order_number"`
	MerchantTransactionID string `json:"merchant_transaction_id"`
	RedirectURL           string `json:"redirect_url"`
}

// PaymentStatusResponse is the payment state of an order.
type PaymentStatusResponse struct {
	OrderNumber   string               `json:"order_number"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
}

func newPaymentStatusResponse(order *entity.Order) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	}
}

// InitiatePayment creates a gateway transaction for the caller's order.
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req InitiatePaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	initiation, err := h.paymentUC.InitiatePayment(c.Request().Context(), userID, req.OrderNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, InitiatePaymentResponse{
		OrderNumber:           initiation.OrderNumber,
		MerchantTransactionID: initiation.MerchantTransactionID,
		RedirectURL:           initiation.RedirectURL,
	})
}

// Callback applies a gateway callback after checking its signature.
func (h *PaymentHandler) Callback(c echo.Context) error {
	var req PaymentCallbackRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.paymentUC.HandleCallback(c.Request().Context(), c.Request().Header.Get(headerXVerify), req.Response)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPaymentStatusResponse(order))
}

// Status polls the gateway for an order's payment.
func (h *PaymentHandler) Status(c echo.Context) error {
	caller, err := currentCaller(c)
	if err != nil {
		return err
	}

	order, err := h.paymentUC.CheckStatus(c.Request().Context(), caller, c.Param("orderNumber"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPaymentStatusResponse(order))
}
