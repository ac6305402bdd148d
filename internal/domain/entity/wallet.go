// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionType is the direction of a wallet movement.
type WalletTransactionType string

const (
	WalletCredit WalletTransactionType = "credit"
	WalletDebit  WalletTransactionType = "debit"
)

// WalletTransaction is an immutable ledger line for a user's wallet.
type WalletTransaction struct {
	ID           uuid.UUID             `json:"id"`
	UserID       uuid.UUID             `json:"user_id"`
	OrderID      *uuid.UUID            `json:"order_id,omitempty"`
	Type         WalletTransactionType `json:"type"`
	Amount       decimal.Decimal       `json:"amount"`
	BalanceAfter decimal.Decimal       `json:"balance_after"`
	Reason       string                `json:"reason"`
	CreatedAt    time.Time             `json:"created_at"`
}

// LoyaltyReward computes what a delivered order earns: points per full hundred of the
// order value, and a cashback percentage rounded to 2 decimals.
func LoyaltyReward(orderValue decimal.Decimal, pointsPerHundred int, cashbackPercent decimal.Decimal) (points int, cashback decimal.Decimal) {
	if !orderValue.IsPositive() {
		return 0, decimal.Zero
	}

	hundreds := orderValue.Div(decimal.NewFromInt(100)).Floor().IntPart()
	points = int(hundreds) * pointsPerHundred
	cashback = orderValue.Mul(cashbackPercent).Div(decimal.NewFromInt(100)).Round(2)

	return points, cashback
}
