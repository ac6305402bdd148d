package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"
	"cakes/internal/domain/service"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxDaysBefore = 30

type reminderService struct {
	reminderRepo      repository.ReminderRepository
	userRepo          repository.UserRepository
	mailer            service.Mailer
	defaultDaysBefore int
	logger            *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	UserRepo     repository.UserRepository
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates the event reminder service.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	days := 3
	if params.Config != nil && params.Config.Reminder != nil && params.Config.Reminder.DefaultDaysBefore > 0 {
		days = params.Config.Reminder.DefaultDaysBefore
	}

	return &reminderService{
		reminderRepo:      params.ReminderRepo,
		userRepo:          params.UserRepo,
		mailer:            params.Mailer,
		defaultDaysBefore: days,
		logger:            params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reminderService) applyInput(reminder *entity.EventReminder, input *usecase.ReminderInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}
	if input.EventDate.IsZero() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event date is required")
	}

	eventType := input.EventType
	switch eventType {
	case "":
		eventType = entity.EventTypeOther
	case entity.EventTypeBirthday, entity.EventTypeAnniversary, entity.EventTypeOther:
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown event type %q", input.EventType)
	}

	days := input.DaysBefore
	if days == 0 {
		days = srv.defaultDaysBefore
	}
	if days < 1 || days > maxDaysBefore {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "days before must be between 1 and %d", maxDaysBefore)
	}

	// A changed date or lead time may fall due again this year.
	if !sameMonthDay(reminder.EventDate, input.EventDate) || reminder.DaysBefore != days {
		reminder.LastNotifiedYear = 0
	}

	reminder.Title = title
	reminder.EventType = eventType
	reminder.PersonName = strings.TrimSpace(input.PersonName)
	reminder.EventDate = input.EventDate
	reminder.DaysBefore = days
	reminder.IsActive = input.IsActive

	return nil
}

func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

func (srv *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, input *usecase.ReminderInput) (*entity.EventReminder, error) {
	reminder := &entity.EventReminder{ID: uuid.New(), UserID: userID}
	if err := srv.applyInput(reminder, input); err != nil {
		return nil, err
	}

	if err := srv.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, toAppError(err, "failed to create reminder")
	}

	return reminder, nil
}

// ownReminder loads a reminder, treating another user's reminder as missing.
func (srv *reminderService) ownReminder(ctx context.Context, userID, reminderID uuid.UUID) (*entity.EventReminder, error) {
	reminder, err := srv.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		return nil, toAppError(err, "failed to find reminder")
	}
	if reminder.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrReminderNotFound, "reminder belongs to another user")
	}

	return reminder, nil
}

func (srv *reminderService) UpdateReminder(ctx context.Context, userID, reminderID uuid.UUID, input *usecase.ReminderInput) (*entity.EventReminder, error) {
	reminder, err := srv.ownReminder(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}
	if err := srv.applyInput(reminder, input); err != nil {
		return nil, err
	}

	if err := srv.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, toAppError(err, "failed to update reminder")
	}

	return reminder, nil
}

func (srv *reminderService) DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error {
	if _, err := srv.ownReminder(ctx, userID, reminderID); err != nil {
		return err
	}

	if err := srv.reminderRepo.Delete(ctx, reminderID); err != nil {
		return toAppError(err, "failed to delete reminder")
	}

	return nil
}

func (srv *reminderService) ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.EventReminder, error) {
	reminders, err := srv.reminderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return reminders, nil
}

// SendDueReminders emails the owner of every reminder due today. A failed reminder is logged and
// left unmarked so the next tick retries it.
func (srv *reminderService) SendDueReminders(ctx context.Context, now time.Time) (int, error) {
	reminders, err := srv.reminderRepo.ListActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active reminders")
	}

	sent := 0
	for _, reminder := range reminders {
		occurrence, due := reminder.IsDue(now)
		if !due {
			continue
		}

		if err := srv.sendReminder(ctx, reminder, occurrence); err != nil {
			srv.log(ctx).Error("Failed to send reminder", slog.Any("reminderID", reminder.ID), slog.Any("error", err))

			continue
		}
		sent++
	}

	if sent > 0 {
		srv.log(ctx).Info("Event reminders sent", slog.Int("count", sent))
	}

	return sent, nil
}

func (srv *reminderService) sendReminder(ctx context.Context, reminder *entity.EventReminder, occurrence time.Time) error {
	user, err := srv.userRepo.FindByID(ctx, reminder.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to find reminder owner")
	}

	if err := srv.mailer.Send(ctx, reminderEmail(user, reminder, occurrence)); err != nil {
		return errors.Wrap(err, "failed to email reminder")
	}

	if err := srv.reminderRepo.MarkNotified(ctx, reminder.ID, occurrence.Year()); err != nil {
		return errors.Wrap(err, "failed to mark reminder notified")
	}

	return nil
}

func reminderEmail(user *entity.User, reminder *entity.EventReminder, occurrence time.Time) *service.Email {
	who := reminder.PersonName
	if who == "" {
		who = "someone special"
	}
	date := occurrence.Format("Monday, 2 January")

	subject := fmt.Sprintf("Reminder: %s on %s", reminder.Title, date)
	text := fmt.Sprintf("Hi %s,\n\n%s for %s is coming up on %s (in %d days). Order a cake now so it arrives on time.\n",
		user.Name, reminder.Title, who, date, reminder.DaysBefore)
	body := fmt.Sprintf("<p>Hi %s,</p><p><strong>%s</strong> for %s is coming up on %s (in %d days).</p><p>Order a cake now so it arrives on time.</p>",
		html.EscapeString(user.Name), html.EscapeString(reminder.Title), html.EscapeString(who), date, reminder.DaysBefore)

	return &service.Email{
		ToAddress: user.Email,
		ToName:    user.Name,
		Subject:   subject,
		PlainText: text,
		HTML:      body,
	}
}
