package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentInitiation is where to send the customer to pay.
type PaymentInitiation struct {
	OrderNumber           string
	MerchantTransactionID string
	RedirectURL           string
}

// PaymentUsecase drives online payments for orders.
type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, userID uuid.UUID, orderNumber string) (*PaymentInitiation, error)
	// HandleCallback verifies a gateway callback and applies its result.
	HandleCallback(ctx context.Context, xVerify, encodedResponse string) (*entity.Order, error)
	// CheckStatus polls the gateway for the order's last transaction and applies the result.
	CheckStatus(ctx context.Context, caller Caller, orderNumber string) (*entity.Order, error)
}
