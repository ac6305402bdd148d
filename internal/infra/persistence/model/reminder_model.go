package model

import (
	"time"

	"github.com/google/uuid"
)

// EventReminderModel mirrors the 'event_reminders' table.
type EventReminderModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(200);not null"`
	EventType        string    `gorm:"type:varchar(20);not null"`
	PersonName       string    `gorm:"type:varchar(100)"`
	EventDate        time.Time `gorm:"type:date;not null"`
	DaysBefore       int       `gorm:"not null;default:3"`
	LastNotifiedYear int       `gorm:"not null;default:0"`
	IsActive         bool      `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventReminderModel) TableName() string {
	return "event_reminders"
}
