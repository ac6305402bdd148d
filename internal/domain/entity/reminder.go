// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a reminder.
type EventType string

const (
	EventTypeBirthday    EventType = "birthday"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeOther       EventType = "other"
)

// EventReminder asks the shop to email the customer ahead of a yearly occasion.
// Only the month and day of EventDate matter.
type EventReminder struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Title            string    `json:"title"`
	EventType        EventType `json:"event_type"`
	PersonName       string    `json:"person_name"`
	EventDate        time.Time `json:"event_date"`
	DaysBefore       int       `json:"days_before"`
	LastNotifiedYear int       `json:"last_notified_year"` // Year of the occurrence last notified.
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NextOccurrence returns the first occurrence of the event on or after the start of today.
// Feb 29 events fall on Feb 28 in non-leap years.
func (r *EventReminder) NextOccurrence(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	occurrence := occurrenceIn(today.Year(), r.EventDate, now.Location())
	if occurrence.Before(today) {
		occurrence = occurrenceIn(today.Year()+1, r.EventDate, now.Location())
	}

	return occurrence
}

// IsDue reports whether the reminder should be sent today, returning the occurrence it is for.
func (r *EventReminder) IsDue(now time.Time) (occurrence time.Time, due bool) {
	if !r.IsActive {
		return time.Time{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	occurrence = r.NextOccurrence(now)
	if r.LastNotifiedYear == occurrence.Year() {
		return occurrence, false
	}

	days := int(math.Round(occurrence.Sub(today).Hours() / 24))

	return occurrence, days == r.DaysBefore
}

func occurrenceIn(year int, event time.Time, loc *time.Location) time.Time {
	month, day := event.Month(), event.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
