package repository

import (
	"context"
	"errors"

	"cakes/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository persists customer event reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.EventReminder) error
	Update(ctx context.Context, reminder *entity.EventReminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventReminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EventReminder, error)
	// ListActive returns every active reminder; the scheduler filters by date.
	ListActive(ctx context.Context) ([]*entity.EventReminder, error)
	// MarkNotified records the occurrence year a reminder was sent for.
	MarkNotified(ctx context.Context, id uuid.UUID, year int) error
}
