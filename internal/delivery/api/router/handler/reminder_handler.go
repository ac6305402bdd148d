package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler serves the caller's event reminders.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler.
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ReminderRequest is the body of reminder create and update.
type ReminderRequest struct {
	Title      string           `json:"title" validate:"required,max=150"`
	EventType  entity.EventType `json:"event_type" validate:"omitempty,oneof=birthday anniversary other"`
	PersonName string           `json:"person_name" validate:"max=100"`
	EventDate  string           `json:"event_date" validate:"required"`
	DaysBefore int              `json:"days_before" validate:"omitempty,min=1,max=30"`
	IsActive   *bool            `json:"is_active"`
}

func (r *ReminderRequest) toInput() (*usecase.ReminderInput, error) {
	eventDate, err := time.Parse(dateLayout, r.EventDate)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("event_date must be YYYY-MM-DD"))
	}

	return &usecase.ReminderInput{
		Title:      r.Title,
		EventType:  r.EventType,
		PersonName: r.PersonName,
		EventDate:  eventDate,
		DaysBefore: r.DaysBefore,
		IsActive:   flagOrTrue(r.IsActive),
	}, nil
}

// ListReminders returns the caller's reminders.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminders)
}

// CreateReminder adds a reminder for the caller.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	reminder, err := h.reminderUC.CreateReminder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reminder)
}

// UpdateReminder replaces one of the caller's reminders.
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	reminderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	reminder, err := h.reminderUC.UpdateReminder(c.Request().Context(), userID, reminderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// DeleteReminder removes one of the caller's reminders.
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	reminderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.reminderUC.DeleteReminder(c.Request().Context(), userID, reminderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Reminder deleted"})
}
