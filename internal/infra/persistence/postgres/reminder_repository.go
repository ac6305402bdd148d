package postgres

import (
	"context"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.EventReminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

func (repo *reminderRepository) Update(ctx context.Context, reminder *entity.EventReminder) error {
	reminderM := fromReminderDomain(reminder)
	reminderM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.EventReminderModel{ID: reminder.ID}).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(reminderM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reminder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

func (repo *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventReminderModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete reminder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

func (repo *reminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventReminder, error) {
	var reminderM model.EventReminderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder")
	}

	return toReminderDomain(&reminderM), nil
}

func (repo *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EventReminder, error) {
	return repo.list(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *reminderRepository) ListActive(ctx context.Context) ([]*entity.EventReminder, error) {
	return repo.list(repo.db.WithContext(ctx).Where("is_active = ?", true))
}

func (repo *reminderRepository) list(query *gorm.DB) ([]*entity.EventReminder, error) {
	var reminderModels []*model.EventReminderModel
	if err := query.Order("event_date ASC").Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	reminders := make([]*entity.EventReminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}

func (repo *reminderRepository) MarkNotified(ctx context.Context, id uuid.UUID, year int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventReminderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_notified_year": year, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark reminder notified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReminderDomain(data *model.EventReminderModel) *entity.EventReminder {
	if data == nil {
		return nil
	}

	return &entity.EventReminder{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		EventType:        entity.EventType(data.EventType),
		PersonName:       data.PersonName,
		EventDate:        data.EventDate,
		DaysBefore:       data.DaysBefore,
		LastNotifiedYear: data.LastNotifiedYear,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromReminderDomain(data *entity.EventReminder) *model.EventReminderModel {
	if data == nil {
		return nil
	}

	return &model.EventReminderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Title:            data.Title,
		EventType:        string(data.EventType),
		PersonName:       data.PersonName,
		EventDate:        data.EventDate,
		DaysBefore:       data.DaysBefore,
		LastNotifiedYear: data.LastNotifiedYear,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
