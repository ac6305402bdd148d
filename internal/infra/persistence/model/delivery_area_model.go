package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DeliveryAreaModel mirrors the 'delivery_areas' table. The boundary is a JSONB ring of [lng, lat] pairs.
type DeliveryAreaModel struct {
	ID                    uuid.UUID                        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                  string                           `gorm:"type:varchar(100);not null"`
	Pincodes              datatypes.JSONSlice[string]      `gorm:"not null"`
	DeliveryFee           decimal.Decimal                  `gorm:"type:numeric(10,2);not null;default:0"`
	FreeDeliveryThreshold decimal.Decimal                  `gorm:"type:numeric(10,2);not null;default:0"`
	CenterLatitude        float64                          `gorm:"type:decimal(10,8)"`
	CenterLongitude       float64                          `gorm:"type:decimal(11,8)"`
	RadiusKm              float64                          `gorm:"type:numeric(6,2);not null;default:0"`
	Boundary              datatypes.JSONSlice[[2]float64]
	IsActive              bool `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAreaModel) TableName() string {
	return "delivery_areas"
}
