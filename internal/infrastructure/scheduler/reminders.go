package scheduler

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/calendar"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Notifier delivers a fired reminder. Delivery is best-effort and
// fire-once; a missed alert is never replayed.
type Notifier interface {
	Notify(ev calendar.Event, dateKey string)
}

// ReminderScheduler is a registry of one-shot alert timers keyed by
// occurrence id. Timers live only in memory: on restart the registry is
// rebuilt from the persisted document via Reschedule, and a cron rescan
// repeats that daily so far-future alerts survive clock drift and long
// uptimes.
type ReminderScheduler struct {
	notifier Notifier
	logger   *logger.Logger
	loc      *time.Location
	nowFn    func() time.Time
	cron     *cron.Cron

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a reminder scheduler delivering through notifier. Alert
// wall-clock times are interpreted in the local timezone.
func New(notifier Notifier, log *logger.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		notifier: notifier,
		logger:   log,
		loc:      time.Local,
		nowFn:    time.Now,
		timers:   make(map[string]*time.Timer),
	}
}

// Schedule registers the alert for one occurrence. Scheduling the same
// occurrence id again replaces the previous timer. Occurrences without
// an alert, without a start time, or whose alert moment has already
// passed are ignored.
func (s *ReminderScheduler) Schedule(ev calendar.Event, dateKey string) {
	if ev.AlertTime <= 0 || ev.StartTime == "" {
		return
	}
	alertAt, ok := AlertTimeFor(ev, dateKey, s.loc)
	if !ok {
		return
	}
	delay := alertAt.Sub(s.nowFn())
	if delay <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, exists := s.timers[ev.ID]; exists {
		t.Stop()
	}
	id := ev.ID
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		s.notifier.Notify(ev, dateKey)
	})
}

// Cancel retracts the pending alert for an occurrence, if any. Deleting
// an event must not leave its alert armed.
func (s *ReminderScheduler) Cancel(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, exists := s.timers[eventID]; exists {
		t.Stop()
		delete(s.timers, eventID)
	}
}

// Reschedule drops every pending timer and rebuilds the registry from
// the given document. Only alerts still in the future are armed.
func (s *ReminderScheduler) Reschedule(events calendar.EventMap) {
	s.mu.Lock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	for dateKey, list := range events {
		for _, ev := range list {
			s.Schedule(ev, dateKey)
		}
	}

	s.logger.Info("reminders rescheduled from persisted state",
		zap.Int("pending", s.Pending()))
}

// Pending reports the number of armed timers.
func (s *ReminderScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Start arms the periodic rescan. source must return the current
// persisted document; it is polled on each cron tick.
func (s *ReminderScheduler) Start(rescanCron string, source func() calendar.EventMap) error {
	c := cron.New()
	if _, err := c.AddFunc(rescanCron, func() {
		s.Reschedule(source())
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c

	s.logger.Info("reminder rescan scheduled", zap.String("cron", rescanCron))
	return nil
}

// Stop halts the rescan and cancels every pending timer.
func (s *ReminderScheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// AlertTimeFor computes the wall-clock moment the alert for ev on
// dateKey fires: the event's start time minus its alert lead, in loc.
func AlertTimeFor(ev calendar.Event, dateKey string, loc *time.Location) (time.Time, bool) {
	date, err := calendar.ParseDateKey(dateKey)
	if err != nil {
		return time.Time{}, false
	}
	parts := strings.SplitN(ev.StartTime, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, loc)
	return start.Add(-time.Duration(ev.AlertTime) * time.Minute), true
}
