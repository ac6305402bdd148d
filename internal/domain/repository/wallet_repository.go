package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance is returned when a debit would take a wallet below zero.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// WalletRepository owns wallet balances, loyalty points and the wallet ledger.
type WalletRepository interface {
	// AdjustBalance adds delta (negative for debits) to the user's balance and returns the new balance.
	// A debit that would make the balance negative changes nothing and returns ErrInsufficientBalance.
	AdjustBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	AddLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int) error
	CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WalletTransaction, error)
}
