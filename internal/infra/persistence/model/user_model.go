// Package model holds the GORM persistence structs. They are exported so cmd/gen can generate typed queries from them.
package model

import (
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Roles and saved addresses are JSONB columns.
type UserModel struct {
	ID            uuid.UUID                         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string                            `gorm:"type:varchar(255);unique;not null"`
	Name          string                            `gorm:"type:varchar(100)"`
	Phone         string                            `gorm:"type:varchar(20)"`
	Roles         datatypes.JSONSlice[string]       `gorm:"not null"`
	Addresses     datatypes.JSONSlice[entity.Address]
	WalletBalance decimal.Decimal                   `gorm:"type:numeric(12,2);not null;default:0;check:wallet_balance >= 0"`
	LoyaltyPoints int                               `gorm:"not null;default:0"`
	IsActive      bool                              `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
