package calendar

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeMeeting  EventType = "meeting"
	EventTypeTask     EventType = "task"
	EventTypeEconomic EventType = "economic"
	EventTypeHoliday  EventType = "holiday"
	EventTypePersonal EventType = "personal"
)

type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatCustom  RepeatType = "custom"
)

// Event is one materialized occurrence of a calendar entry. A repeating
// entry is stored as independent Event records, one per expanded date,
// each with its own id. The JSON field names are the persisted wire
// format and must not change.
type Event struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Type        EventType  `json:"type"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	AlertTime   int        `json:"alertTime"`
	RepeatType  RepeatType `json:"repeatType"`
	CustomDays  []int      `json:"customDays"`
	Country     string     `json:"country,omitempty"`
}

// EventMap is the whole persisted calendar document: date key to the
// ordered list of events on that day. Insertion order within a key is
// display order. A key must never map to an empty list; the key is
// removed instead.
type EventMap map[string][]Event

// DateKeyLayout is the canonical YYYY-MM-DD form of a calendar day.
const DateKeyLayout = "2006-01-02"

// FormatDateKey renders t's calendar date as a date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a date key into a UTC-midnight time. Date keys are
// naive calendar dates; callers that need wall-clock times (reminders)
// rebuild them in their own location.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

// NewEventID generates an occurrence id: millisecond timestamp plus a
// random tiebreaker, so occurrences expanded from one repeat rule in the
// same millisecond stay distinct.
func NewEventID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}

// CreateEventRequest carries the user-entered fields of a new calendar
// entry before recurrence expansion.
type CreateEventRequest struct {
	DateKey     string     `json:"dateKey" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Type        EventType  `json:"type"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	AlertTime   int        `json:"alertTime"`
	RepeatType  RepeatType `json:"repeatType"`
	RepeatEnd   string     `json:"repeatEnd"`
	CustomDays  []int      `json:"customDays"`
}

// CreateEventResult reports what a create expanded into.
type CreateEventResult struct {
	Dates    []string `json:"dates"`
	EventIDs []string `json:"eventIds"`
}

// Common errors
var (
	ErrNotFound          = NewError("event not found")
	ErrEmptyDescription  = NewError("description is required")
	ErrInvalidEventType  = NewError("invalid event type")
	ErrInvalidRepeatType = NewError("invalid repeat type")
	ErrNoCustomDays      = NewError("custom repeat requires at least one weekday")
	ErrInvalidCustomDay  = NewError("custom weekday must be between 0 and 6")
	ErrInvalidTime       = NewError("time must be in HH:MM format")
	ErrInvalidAlertTime  = NewError("alert time must not be negative")
	ErrInvalidDateKey    = NewError("date key must be in YYYY-MM-DD format")
)

// Error type
type Error struct {
	message string
}

func NewError(message string) *Error {
	return &Error{message: message}
}

func (e *Error) Error() string {
	return e.message
}

// Validate checks the request against the event model rules.
func (r *CreateEventRequest) Validate() error {
	if r.Description == "" {
		return ErrEmptyDescription
	}
	if r.Type != "" && !isValidEventType(r.Type) {
		return ErrInvalidEventType
	}
	if _, err := ParseDateKey(r.DateKey); err != nil {
		return err
	}
	if r.RepeatEnd != "" {
		if _, err := ParseDateKey(r.RepeatEnd); err != nil {
			return err
		}
	}
	if r.RepeatType != "" && !isValidRepeatType(r.RepeatType) {
		return ErrInvalidRepeatType
	}
	if r.RepeatType == RepeatCustom {
		if len(r.CustomDays) == 0 {
			return ErrNoCustomDays
		}
		for _, d := range r.CustomDays {
			if d < 0 || d > 6 {
				return ErrInvalidCustomDay
			}
		}
	}
	if r.AlertTime < 0 {
		return ErrInvalidAlertTime
	}
	for _, ts := range []string{r.StartTime, r.EndTime} {
		if ts == "" {
			continue // all-day event
		}
		if _, err := time.Parse("15:04", ts); err != nil {
			return ErrInvalidTime
		}
	}
	return nil
}

func isValidEventType(t EventType) bool {
	switch t {
	case EventTypeMeeting, EventTypeTask, EventTypeEconomic,
		EventTypeHoliday, EventTypePersonal:
		return true
	}
	return false
}

func isValidRepeatType(t RepeatType) bool {
	switch t {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom:
		return true
	}
	return false
}
