package impl

import (
	"context"
	"testing"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	mockRepo "cakes/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWalletService_GetWallet(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	walletRepo := mockRepo.NewMockWalletRepository(t)
	svc := NewWalletService(txManager, userRepo, walletRepo, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()
	txns := []*entity.WalletTransaction{{ID: uuid.New(), UserID: userID, Type: entity.WalletCredit, Amount: decimal.NewFromInt(18)}}

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, WalletBalance: decimal.NewFromInt(18), LoyaltyPoints: 9}, nil)
	walletRepo.EXPECT().ListTransactions(ctx, userID, recentTransactions).Return(txns, nil)

	summary, err := svc.GetWallet(ctx, userID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(18).Equal(summary.Balance))
	assert.Equal(t, 9, summary.LoyaltyPoints)
	assert.Equal(t, txns, summary.Transactions)
}

func TestWalletService_AdjustWallet(t *testing.T) {
	t.Run("credit records a ledger line", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		tx := newTxRepos(t, txManager)
		svc := NewWalletService(txManager, mockRepo.NewMockUserRepository(t), mockRepo.NewMockWalletRepository(t), newDiscardLogger())
		ctx := context.Background()
		userID := uuid.New()

		tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(250)).Return(decimal.NewFromInt(400), nil)
		tx.walletRepo.EXPECT().CreateTransaction(ctx, mock.AnythingOfType("*entity.WalletTransaction")).Return(nil)

		txn, err := svc.AdjustWallet(ctx, userID, decimal.NewFromInt(250), " ")

		require.NoError(t, err)
		assert.Equal(t, entity.WalletCredit, txn.Type)
		assert.Equal(t, "Manual adjustment", txn.Reason)
		assert.True(t, decimal.NewFromInt(400).Equal(txn.BalanceAfter))
		assert.Nil(t, txn.OrderID)
	})

	t.Run("debit beyond balance", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		tx := newTxRepos(t, txManager)
		svc := NewWalletService(txManager, mockRepo.NewMockUserRepository(t), mockRepo.NewMockWalletRepository(t), newDiscardLogger())
		ctx := context.Background()
		userID := uuid.New()

		tx.walletRepo.EXPECT().AdjustBalance(ctx, userID, decimalEq(-1000)).Return(decimal.Zero, repository.ErrInsufficientBalance)

		_, err := svc.AdjustWallet(ctx, userID, decimal.NewFromInt(-1000), "Goodwill reversal")

		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientWalletBalance))
	})

	t.Run("zero amount", func(t *testing.T) {
		svc := NewWalletService(mockRepo.NewMockTransactionManager(t), mockRepo.NewMockUserRepository(t), mockRepo.NewMockWalletRepository(t), newDiscardLogger())

		_, err := svc.AdjustWallet(context.Background(), uuid.New(), decimal.RequireFromString("0.001"), "rounding")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidAmount))
	})
}
