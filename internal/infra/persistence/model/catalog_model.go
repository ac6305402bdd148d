package model

import (
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Slug         string     `gorm:"type:varchar(120);unique;not null"`
	Description  string     `gorm:"type:text"`
	ImageURL     string     `gorm:"type:varchar(500)"`
	ParentID     *uuid.UUID `gorm:"type:uuid;index"`
	DisplayOrder int        `gorm:"not null;default:0"`
	IsActive     bool       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// CakeModel mirrors the 'cakes' table. Weight options, flavors, images and tags are JSONB.
type CakeModel struct {
	ID            uuid.UUID                              `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID    uuid.UUID                              `gorm:"type:uuid;not null;index"`
	Name          string                                 `gorm:"type:varchar(200);not null"`
	Slug          string                                 `gorm:"type:varchar(220);unique;not null"`
	Description   string                                 `gorm:"type:text"`
	BasePrice     decimal.Decimal                        `gorm:"type:numeric(10,2);not null"`
	WeightOptions datatypes.JSONSlice[entity.WeightOption]
	Flavors       datatypes.JSONSlice[string]
	Images        datatypes.JSONSlice[string]
	Tags          datatypes.JSONSlice[string]
	IsEggless     bool    `gorm:"not null;default:false;index"`
	IsBestseller  bool    `gorm:"not null;default:false;index"`
	IsAvailable   bool    `gorm:"not null"`
	AverageRating float64 `gorm:"type:numeric(3,2);not null;default:0"`
	ReviewCount   int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CakeModel) TableName() string {
	return "cakes"
}

// AddonModel mirrors the 'addons' table.
type AddonModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(50)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	IsAvailable bool            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddonModel) TableName() string {
	return "addons"
}
