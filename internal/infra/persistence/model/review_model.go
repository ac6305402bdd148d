package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. One review per user, cake and order.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CakeID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_cake_order"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_cake_order"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_cake_order"`
	UserName   string    `gorm:"type:varchar(100)"`
	Rating     int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment    string    `gorm:"type:text"`
	IsApproved bool      `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
