package model

import (
	"time"

	"github.com/google/uuid"
)

// NavigationItemModel mirrors the 'navigation_items' table.
type NavigationItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Label     string     `gorm:"type:varchar(100);not null"`
	URL       string     `gorm:"type:varchar(500);not null"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	Position  int        `gorm:"not null;default:0"`
	IsActive  bool       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NavigationItemModel) TableName() string {
	return "navigation_items"
}

// PageModel mirrors the 'pages' table.
type PageModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug            string    `gorm:"type:varchar(120);unique;not null"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Content         string    `gorm:"type:text"`
	MetaTitle       string    `gorm:"type:varchar(200)"`
	MetaDescription string    `gorm:"type:varchar(500)"`
	IsPublished     bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PageModel) TableName() string {
	return "pages"
}
