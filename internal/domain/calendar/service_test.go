package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	events  EventMap
	saveErr error
	saves   int
}

func (r *fakeRepo) Load(_ context.Context) (EventMap, error) {
	if r.events == nil {
		return EventMap{}, nil
	}
	return r.events, nil
}

func (r *fakeRepo) Save(_ context.Context, events EventMap) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.events = events
	return nil
}

type fakeRegistry struct {
	scheduled   []string
	cancelled   []string
	rescheduled int
}

func (f *fakeRegistry) Schedule(ev Event, _ string) { f.scheduled = append(f.scheduled, ev.ID) }
func (f *fakeRegistry) Cancel(eventID string)       { f.cancelled = append(f.cancelled, eventID) }
func (f *fakeRegistry) Reschedule(_ EventMap)       { f.rescheduled++ }

func newTestService(repo Repository, reg ReminderRegistry) Service {
	return NewService(repo, reg, logger.NewLogger("error"))
}

func TestCreateEventExpandsRecurrence(t *testing.T) {
	repo := &fakeRepo{}
	reg := &fakeRegistry{}
	svc := newTestService(repo, reg)
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		DateKey:     "2024-01-01",
		Description: "Morning standup",
		RepeatType:  RepeatWeekly,
		RepeatEnd:   "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15"}, result.Dates)
	assert.Len(t, result.EventIDs, 3)

	events := svc.Events(context.Background())
	assert.Len(t, events, 3)
	for _, key := range result.Dates {
		require.Len(t, events[key], 1)
		ev := events[key][0]
		assert.Equal(t, "Morning standup", ev.Description)
		assert.Equal(t, EventTypeMeeting, ev.Type, "type defaults to meeting")
		assert.NotEmpty(t, ev.ID)
	}

	// Each occurrence gets a distinct id.
	seen := map[string]bool{}
	for _, id := range result.EventIDs {
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestCreateEventDetectsCountry(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeRegistry{})
	require.NoError(t, svc.Load(context.Background()))

	result, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		DateKey:     "2024-03-20",
		Description: "FED interest rate decision",
		Type:        EventTypeEconomic,
	})
	require.NoError(t, err)
	require.Len(t, result.Dates, 1)

	events := svc.Events(context.Background())
	assert.Equal(t, "US", events["2024-03-20"][0].Country)
}

func TestCreateEventSchedulesReminders(t *testing.T) {
	reg := &fakeRegistry{}
	svc := newTestService(&fakeRepo{}, reg)
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		DateKey:     "2099-01-01",
		Description: "Annual review",
		StartTime:   "09:00",
		AlertTime:   30,
		RepeatType:  RepeatDaily,
		RepeatEnd:   "2099-01-03",
	})
	require.NoError(t, err)
	assert.Len(t, reg.scheduled, 3)
}

func TestCreateEventNoReminderWithoutAlert(t *testing.T) {
	reg := &fakeRegistry{}
	svc := newTestService(&fakeRepo{}, reg)
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		DateKey:     "2099-01-01",
		Description: "All-day holiday",
	})
	require.NoError(t, err)
	assert.Empty(t, reg.scheduled)
}

func TestCreateEventValidation(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeRegistry{})
	require.NoError(t, svc.Load(context.Background()))

	tests := []struct {
		name     string
		req      CreateEventRequest
		expected error
	}{
		{
			name:     "Missing description",
			req:      CreateEventRequest{DateKey: "2024-01-01"},
			expected: ErrEmptyDescription,
		},
		{
			name:     "Bad date key",
			req:      CreateEventRequest{DateKey: "01/15/2024", Description: "x"},
			expected: ErrInvalidDateKey,
		},
		{
			name:     "Unknown event type",
			req:      CreateEventRequest{DateKey: "2024-01-01", Description: "x", Type: "party"},
			expected: ErrInvalidEventType,
		},
		{
			name:     "Unknown repeat type",
			req:      CreateEventRequest{DateKey: "2024-01-01", Description: "x", RepeatType: "yearly"},
			expected: ErrInvalidRepeatType,
		},
		{
			name:     "Custom repeat without weekdays",
			req:      CreateEventRequest{DateKey: "2024-01-01", Description: "x", RepeatType: RepeatCustom},
			expected: ErrNoCustomDays,
		},
		{
			name: "Custom weekday out of range",
			req: CreateEventRequest{
				DateKey: "2024-01-01", Description: "x",
				RepeatType: RepeatCustom, CustomDays: []int{7},
			},
			expected: ErrInvalidCustomDay,
		},
		{
			name:     "Malformed start time",
			req:      CreateEventRequest{DateKey: "2024-01-01", Description: "x", StartTime: "9am"},
			expected: ErrInvalidTime,
		},
		{
			name:     "Negative alert lead",
			req:      CreateEventRequest{DateKey: "2024-01-01", Description: "x", AlertTime: -5},
			expected: ErrInvalidAlertTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCreateEventFailedSaveLeavesStateUntouched(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := newTestService(repo, &fakeRegistry{})
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		DateKey:     "2024-01-01",
		Description: "Should not stick",
	})
	require.Error(t, err)
	assert.Empty(t, svc.Events(context.Background()))
}

func TestDeleteOccurrence(t *testing.T) {
	repo := &fakeRepo{events: EventMap{
		"2024-01-01": {
			{ID: "a", Description: "first"},
			{ID: "b", Description: "second"},
		},
		"2024-01-02": {
			{ID: "c", Description: "lone"},
		},
	}}
	reg := &fakeRegistry{}
	svc := newTestService(repo, reg)
	require.NoError(t, svc.Load(context.Background()))

	// Deleting one of two keeps the date key.
	require.NoError(t, svc.DeleteOccurrence(context.Background(), "2024-01-01", "a"))
	events := svc.Events(context.Background())
	require.Len(t, events["2024-01-01"], 1)
	assert.Equal(t, "b", events["2024-01-01"][0].ID)
	assert.Equal(t, []string{"a"}, reg.cancelled)

	// Deleting the last event removes the key entirely.
	require.NoError(t, svc.DeleteOccurrence(context.Background(), "2024-01-02", "c"))
	events = svc.Events(context.Background())
	_, exists := events["2024-01-02"]
	assert.False(t, exists)
}

func TestDeleteOccurrenceNotFound(t *testing.T) {
	repo := &fakeRepo{events: EventMap{
		"2024-01-01": {{ID: "a"}},
	}}
	svc := newTestService(repo, &fakeRegistry{})
	require.NoError(t, svc.Load(context.Background()))

	tests := []struct {
		name    string
		dateKey string
		eventID string
	}{
		{"Unknown date key", "2024-06-01", "a"},
		{"Unknown event id", "2024-01-01", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.DeleteOccurrence(context.Background(), tt.dateKey, tt.eventID)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestReplaceAllDropsEmptyLists(t *testing.T) {
	repo := &fakeRepo{}
	reg := &fakeRegistry{}
	svc := newTestService(repo, reg)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.ReplaceAll(context.Background(), EventMap{
		"2024-01-01": {{ID: "a", Description: "keep"}},
		"2024-01-02": {},
	})
	require.NoError(t, err)

	events := svc.Events(context.Background())
	assert.Len(t, events, 1)
	_, exists := events["2024-01-02"]
	assert.False(t, exists)
	assert.Greater(t, reg.rescheduled, 0)
}

func TestLoadBackfillsCountry(t *testing.T) {
	repo := &fakeRepo{events: EventMap{
		"2024-01-01": {
			{ID: "a", Description: "ECB press conference"},
			{ID: "b", Description: "Dentist", Country: ""},
			{ID: "c", Description: "BOJ meeting", Country: "JP"},
		},
	}}
	svc := newTestService(repo, &fakeRegistry{})
	require.NoError(t, svc.Load(context.Background()))

	events := svc.Events(context.Background())
	list := events["2024-01-01"]
	assert.Equal(t, "EU", list[0].Country)
	assert.Equal(t, "", list[1].Country)
	assert.Equal(t, "JP", list[2].Country)
	assert.Equal(t, 1, repo.saves, "backfill persists once")
}
