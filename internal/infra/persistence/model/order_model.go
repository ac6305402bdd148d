package model

import (
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items, the delivery address and delivery options are JSONB snapshots.
type OrderModel struct {
	ID                   uuid.UUID                               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber          string                                  `gorm:"type:varchar(20);unique;not null"`
	UserID               uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Items                datatypes.JSONSlice[entity.OrderItem]   `gorm:"not null"`
	DeliveryAddress      datatypes.JSONType[entity.Address]      `gorm:"not null"`
	Delivery             datatypes.JSONType[entity.DeliveryOptions]
	Subtotal             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Discount             decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	WalletUsed           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PromoCode            string          `gorm:"type:varchar(50)"`
	Status               string          `gorm:"type:varchar(20);not null;index"`
	PaymentMethod        string          `gorm:"type:varchar(20);not null"`
	PaymentStatus        string          `gorm:"type:varchar(20);not null"`
	PaymentTransactionID string          `gorm:"type:varchar(64);index"`
	DeliveryBoyID        *uuid.UUID      `gorm:"type:uuid;index"`
	VendorID             *uuid.UUID      `gorm:"type:uuid;index"`
	CancelReason         string          `gorm:"type:text"`
	ConfirmedAt          *time.Time
	PreparingAt          *time.Time
	OutForDeliveryAt     *time.Time
	DeliveredAt          *time.Time
	CancelledAt          *time.Time
	AssignedAt           *time.Time
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
