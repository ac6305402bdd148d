package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeModel mirrors the 'promo_codes' table. Code is stored uppercase.
type PromoCodeModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code          string          `gorm:"type:varchar(50);unique;not null"`
	Description   string          `gorm:"type:text"`
	DiscountType  string          `gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MinOrderValue decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	MaxDiscount   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	UsageLimit    int             `gorm:"not null;default:0"`
	UsedCount     int             `gorm:"not null;default:0"`
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	IsActive      bool `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}
