package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// recentTransactions is how many ledger lines the wallet page shows.
const recentTransactions = 20

type walletService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	walletRepo repository.WalletRepository
	logger     *slog.Logger
}

// NewWalletService creates the wallet service.
func NewWalletService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	logger *slog.Logger,
) usecase.WalletUsecase {
	return &walletService{
		txManager:  txManager,
		userRepo:   userRepo,
		walletRepo: walletRepo,
		logger:     logger,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*usecase.WalletSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, toAppError(err, "failed to find wallet owner")
	}

	txns, err := srv.walletRepo.ListTransactions(ctx, userID, recentTransactions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	return &usecase.WalletSummary{
		Balance:       user.WalletBalance,
		LoyaltyPoints: user.LoyaltyPoints,
		Transactions:  txns,
	}, nil
}

// AdjustWallet moves money by hand. A debit larger than the balance is refused.
func (srv *walletService) AdjustWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, reason string) (*entity.WalletTransaction, error) {
	amount = amount.Round(2)
	if amount.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrInvalidAmount, "amount must not be zero")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "Manual adjustment"
	}

	var txn *entity.WalletTransaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		txn, err = moveWallet(ctx, repoFactory.WalletRepo(), userID, nil, amount, reason)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Wallet adjustment failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to adjust wallet")
	}

	srv.log(ctx).Info("Wallet adjusted",
		slog.Any("userID", userID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", txn.BalanceAfter.StringFixed(2)))

	return txn, nil
}
