package usecase

import (
	"context"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletSummary is the customer's wallet view.
type WalletSummary struct {
	Balance       decimal.Decimal
	LoyaltyPoints int
	Transactions  []*entity.WalletTransaction
}

// WalletUsecase exposes balances and admin adjustments.
type WalletUsecase interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*WalletSummary, error)
	// AdjustWallet credits (positive) or debits (negative) a wallet by hand.
	AdjustWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, reason string) (*entity.WalletTransaction, error)
}
