package postgres

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

// AdjustBalance applies delta in a single conditional UPDATE so concurrent debits can never
// take the balance below zero.
func (repo *walletRepository) AdjustBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	var updated model.UserModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "wallet_balance"}}}).
		Where("id = ? AND deleted_at IS NULL AND wallet_balance + ? >= 0", userID, delta).
		Updates(map[string]any{
			"wallet_balance": gorm.Expr("wallet_balance + ?", delta),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return decimal.Zero, errors.Wrap(result.Error, "failed to adjust wallet balance")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ? AND deleted_at IS NULL", userID).
			Count(&count).Error; err != nil {
			return decimal.Zero, errors.Wrap(err, "failed to check wallet owner")
		}
		if count == 0 {
			return decimal.Zero, repository.ErrUserNotFound
		}

		return decimal.Zero, repository.ErrInsufficientBalance
	}

	return updated.WalletBalance, nil
}

func (repo *walletRepository) AddLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", userID).
		Updates(map[string]any{
			"loyalty_points": gorm.Expr("loyalty_points + ?", points),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add loyalty points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *walletRepository) CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	txnM := fromWalletTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record wallet transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt

	return nil
}

func (repo *walletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	if limit <= 0 || limit > repository.MaxPageSize {
		limit = repository.DefaultPageSize
	}

	var txnModels []*model.WalletTransactionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txns := make([]*entity.WalletTransaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toWalletTransactionDomain(txnM))
	}

	return txns, nil
}

// --- Mapper Functions ---

func toWalletTransactionDomain(data *model.WalletTransactionModel) *entity.WalletTransaction {
	if data == nil {
		return nil
	}

	return &entity.WalletTransaction{
		ID:           data.ID,
		UserID:       data.UserID,
		OrderID:      data.OrderID,
		Type:         entity.WalletTransactionType(data.Type),
		Amount:       data.Amount,
		BalanceAfter: data.BalanceAfter,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}

func fromWalletTransactionDomain(data *entity.WalletTransaction) *model.WalletTransactionModel {
	if data == nil {
		return nil
	}

	return &model.WalletTransactionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		OrderID:      data.OrderID,
		Type:         string(data.Type),
		Amount:       data.Amount,
		BalanceAfter: data.BalanceAfter,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}
