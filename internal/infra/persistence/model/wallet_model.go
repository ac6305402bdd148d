package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionModel mirrors the append-only 'wallet_transactions' ledger.
type WalletTransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID      *uuid.UUID      `gorm:"type:uuid;index"`
	Type         string          `gorm:"type:varchar(10);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason       string          `gorm:"type:varchar(255)"`
	CreatedAt    time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
