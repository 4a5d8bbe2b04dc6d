package scheduler

import (
	"strconv"
	"strings"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/calendar"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"go.uber.org/zap"
)

// LogNotifier delivers reminders to the structured log. Desktop and push
// delivery belong to the clients; the backend only records that the
// alert fired.
type LogNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ev calendar.Event, dateKey string) {
	n.logger.Info("calendar event reminder",
		zap.String("description", ev.Description),
		zap.String("date", dateKey),
		zap.String("start", to12Hour(ev.StartTime)),
		zap.String("end", to12Hour(ev.EndTime)),
		zap.Int("alert_minutes", ev.AlertTime))
}

// to12Hour renders an HH:MM time in 12-hour form; an empty time means
// an all-day event.
func to12Hour(t string) string {
	if t == "" {
		return "All Day"
	}
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return strconv.Itoa(hour12) + ":" + parts[1] + " " + ampm
}
