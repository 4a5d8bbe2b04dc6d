package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"go.uber.org/zap"
)

// ReminderRegistry is the scheduling side the calendar service drives.
// Schedule is idempotent per occurrence id; Cancel retracts a pending
// alert; Reschedule recomputes the whole registry from a document.
type ReminderRegistry interface {
	Schedule(ev Event, dateKey string)
	Cancel(eventID string)
	Reschedule(events EventMap)
}

// Service defines the business logic interface for calendar events
type Service interface {
	// Load reads the persisted document into memory, backfills missing
	// country codes, and schedules pending reminders. Called once at
	// process start.
	Load(ctx context.Context) error

	Events(ctx context.Context) EventMap
	ReplaceAll(ctx context.Context, events EventMap) error
	CreateEvent(ctx context.Context, req CreateEventRequest) (*CreateEventResult, error)
	DeleteOccurrence(ctx context.Context, dateKey, eventID string) error
}

type service struct {
	repo      Repository
	reminders ReminderRegistry
	logger    *logger.Logger

	// mu guards events. The service owns the in-memory mirror of the
	// persisted document; every mutation rewrites the whole document,
	// last write wins.
	mu     sync.Mutex
	events EventMap
}

// NewService creates a new calendar service instance
func NewService(repo Repository, reminders ReminderRegistry, logger *logger.Logger) Service {
	return &service{
		repo:      repo,
		reminders: reminders,
		logger:    logger,
		events:    EventMap{},
	}
}

func (s *service) Load(ctx context.Context) error {
	events, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	// One-time migration: classify events persisted before country
	// detection existed. Persist only if something actually changed.
	migrated := 0
	for dateKey, list := range events {
		for i, ev := range list {
			if ev.Country != "" {
				continue
			}
			if code := DetectCountry(ev.Description); code != "" {
				events[dateKey][i].Country = code
				migrated++
			}
		}
	}
	if migrated > 0 {
		if err := s.repo.Save(ctx, events); err != nil {
			return err
		}
		s.logger.Info("backfilled country codes on load",
			zap.Int("events_updated", migrated))
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.reminders.Reschedule(events)

	s.logger.Info("calendar events loaded",
		zap.Int("dates", len(events)),
		zap.Int("events", countEvents(events)))
	return nil
}

func (s *service) Events(_ context.Context) EventMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEvents(s.events)
}

func (s *service) ReplaceAll(ctx context.Context, events EventMap) error {
	if events == nil {
		events = EventMap{}
	}
	// Keep the no-empty-list invariant even when the client sends
	// lists it has already emptied.
	for dateKey, list := range events {
		if len(list) == 0 {
			delete(events, dateKey)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, events); err != nil {
		return err
	}
	s.events = events
	s.reminders.Reschedule(events)

	s.logger.Info("calendar events replaced",
		zap.Int("dates", len(events)),
		zap.Int("events", countEvents(events)))
	return nil
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*CreateEventResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, err := ParseDateKey(req.DateKey)
	if err != nil {
		return nil, err
	}
	var repeatEnd time.Time
	if req.RepeatEnd != "" {
		repeatEnd, err = ParseDateKey(req.RepeatEnd)
		if err != nil {
			return nil, err
		}
	}

	eventType := req.Type
	if eventType == "" {
		eventType = EventTypeMeeting
	}
	repeat := req.RepeatType
	if repeat == "" {
		repeat = RepeatNone
	}

	base := Event{
		Description: req.Description,
		Type:        eventType,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		AlertTime:   req.AlertTime,
		RepeatType:  repeat,
		CustomDays:  req.CustomDays,
		Country:     DetectCountry(req.Description),
	}

	dates := ExpandDates(startDate, repeat, repeatEnd, req.CustomDays)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a copy and swap only after a successful save, so a failed
	// write never leaves phantom events in memory.
	next := cloneEvents(s.events)
	result := &CreateEventResult{}
	created := make([]Event, 0, len(dates))
	for _, date := range dates {
		key := FormatDateKey(date)
		occ := base
		occ.ID = NewEventID()
		next[key] = append(next[key], occ)
		result.Dates = append(result.Dates, key)
		result.EventIDs = append(result.EventIDs, occ.ID)
		created = append(created, occ)
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.events = next

	if base.AlertTime > 0 && base.StartTime != "" {
		for i, occ := range created {
			s.reminders.Schedule(occ, result.Dates[i])
		}
	}

	s.logger.Info("calendar event created",
		zap.String("description", base.Description),
		zap.String("repeat", string(base.RepeatType)),
		zap.Int("occurrences", len(created)))
	return result, nil
}

func (s *service) DeleteOccurrence(ctx context.Context, dateKey, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.events[dateKey]
	if !ok {
		return ErrNotFound
	}

	next := cloneEvents(s.events)
	filtered := next[dateKey][:0]
	for _, ev := range next[dateKey] {
		if ev.ID != eventID {
			filtered = append(filtered, ev)
		}
	}
	if len(filtered) == len(list) {
		return ErrNotFound
	}
	if len(filtered) == 0 {
		delete(next, dateKey)
	} else {
		next[dateKey] = filtered
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.events = next
	s.reminders.Cancel(eventID)

	s.logger.Info("calendar event deleted",
		zap.String("date_key", dateKey),
		zap.String("event_id", eventID))
	return nil
}

func cloneEvents(events EventMap) EventMap {
	out := make(EventMap, len(events))
	for dateKey, list := range events {
		cp := make([]Event, len(list))
		copy(cp, list)
		out[dateKey] = cp
	}
	return out
}

func countEvents(events EventMap) int {
	total := 0
	for _, list := range events {
		total += len(list)
	}
	return total
}
