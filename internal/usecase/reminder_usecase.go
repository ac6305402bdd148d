package usecase

import (
	"context"
	"time"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderInput is the writable part of an event reminder. Zero DaysBefore uses the configured default.
type ReminderInput struct {
	Title      string
	EventType  entity.EventType
	PersonName string
	EventDate  time.Time
	DaysBefore int
	IsActive   bool
}

// ReminderUsecase manages customer event reminders and sends the due ones.
type ReminderUsecase interface {
	CreateReminder(ctx context.Context, userID uuid.UUID, input *ReminderInput) (*entity.EventReminder, error)
	UpdateReminder(ctx context.Context, userID, reminderID uuid.UUID, input *ReminderInput) (*entity.EventReminder, error)
	DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error
	ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.EventReminder, error)
	// SendDueReminders emails every reminder due at now and returns how many were sent.
	SendDueReminders(ctx context.Context, now time.Time) (int, error)
}
