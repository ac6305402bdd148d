package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cakes/internal/domain/entity"
	domainerrors "cakes/internal/domain/errors"
	mockUsecase "cakes/internal/mocks/usecase"
	"cakes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderHandler(t *testing.T) (*ReminderHandler, *mockUsecase.MockReminderUsecase) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)

	return NewReminderHandler(ReminderHandlerParams{ReminderUC: reminderUC, Logger: slog.Default()}), reminderUC
}

func TestReminderHandler_CreateReminder(t *testing.T) {
	h, reminderUC := newReminderHandler(t)
	userID := uuid.New()

	reminderUC.EXPECT().CreateReminder(mock.Anything, userID, &usecase.ReminderInput{
		Title:      "Mom's birthday",
		EventType:  entity.EventTypeBirthday,
		EventDate:  time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC),
		DaysBefore: 3,
		IsActive:   true,
	}).Return(&entity.EventReminder{ID: uuid.New(), Title: "Mom's birthday"}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/reminders",
		userID: userID,
		body: ReminderRequest{
			Title:      "Mom's birthday",
			EventType:  entity.EventTypeBirthday,
			EventDate:  "2027-03-14",
			DaysBefore: 3,
		},
	})

	require.NoError(t, h.CreateReminder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReminderHandler_CreateReminder_BadDate(t *testing.T) {
	h, _ := newReminderHandler(t)
	c, _ := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/reminders",
		userID: uuid.New(),
		body:   ReminderRequest{Title: "Anniversary", EventDate: "14/03/2027"},
	})

	err := h.CreateReminder(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReminderHandler_UpdateReminder_KeepsInactiveFlag(t *testing.T) {
	h, reminderUC := newReminderHandler(t)
	userID := uuid.New()
	reminderID := uuid.New()
	inactive := false

	reminderUC.EXPECT().UpdateReminder(mock.Anything, userID, reminderID, mock.MatchedBy(func(input *usecase.ReminderInput) bool {
		return !input.IsActive && input.Title == "Anniversary"
	})).Return(&entity.EventReminder{ID: reminderID}, nil)

	c, _ := newTestContext(t, testRequest{
		method: http.MethodPut,
		target: "/api/reminders/" + reminderID.String(),
		userID: userID,
		params: map[string]string{"id": reminderID.String()},
		body:   ReminderRequest{Title: "Anniversary", EventDate: "2027-06-01", IsActive: &inactive},
	})

	require.NoError(t, h.UpdateReminder(c))
}
