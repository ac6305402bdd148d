package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel mirrors the 'user_authentications' table: one row per sign-in method of a
// user. Email rows key on the lowercased address and Google rows on the token subject.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_authentications_identity;check:provider IN ('email','google')"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_authentications_identity"`
	PasswordHash   string    `gorm:"type:varchar(72)"` // bcrypt, email rows only.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table: one row per logged-in device. Only the
// SHA-256 of the token is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_created,priority:1"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	UserAgent string    `gorm:"type:varchar(255)"`
	ClientIP  string    `gorm:"type:varchar(45)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index:idx_refresh_tokens_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
