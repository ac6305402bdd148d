package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentState is the gateway's verdict on a transaction.
type PaymentState string

const (
	PaymentStateSuccess PaymentState = "PAYMENT_SUCCESS"
	PaymentStatePending PaymentState = "PAYMENT_PENDING"
	PaymentStateError   PaymentState = "PAYMENT_ERROR"
	PaymentStateDecline PaymentState = "PAYMENT_DECLINED"
)

// PaymentRequest asks the gateway to start collecting Amount for an order.
type PaymentRequest struct {
	MerchantTransactionID string
	MerchantUserID        string
	Amount                decimal.Decimal
	Phone                 string
}

// PaymentSession is where the customer should be sent to pay.
type PaymentSession struct {
	MerchantTransactionID string
	RedirectURL           string
}

// PaymentResult is a transaction outcome reported by the gateway.
type PaymentResult struct {
	MerchantTransactionID string
	TransactionID         string // Gateway-side reference.
	State                 PaymentState
	Amount                decimal.Decimal
}

// PaymentGateway abstracts the online payment provider.
type PaymentGateway interface {
	Initiate(ctx context.Context, req *PaymentRequest) (*PaymentSession, error)
	// VerifyCallback checks the callback signature and decodes its payload.
	VerifyCallback(xVerify, encodedResponse string) (*PaymentResult, error)
	Status(ctx context.Context, merchantTransactionID string) (*PaymentResult, error)
}
