package calendar

import (
	"time"

	"github.com/teambition/rrule-go"
)

// rruleWeekdays maps the stored weekday index (0=Sunday..6=Saturday)
// onto rrule weekday constants.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// ExpandDates produces the ascending, duplicate-free list of calendar
// dates a repeat rule materializes into, always beginning with the start
// date. Times are UTC midnights; only the calendar date matters.
//
// A repeating rule without an end date is treated as disabled and yields
// only the start date, as does an end date before the start. The end
// date is inclusive. Monthly recurrence matches on day-of-month, so
// months lacking that day are skipped entirely (an event starting on the
// 31st never lands in February); this mirrors the long-standing portal
// behavior and is deliberately left alone.
func ExpandDates(startDate time.Time, repeat RepeatType, repeatEnd time.Time, customDays []int) []time.Time {
	start := midnightUTC(startDate)
	dates := []time.Time{start}

	if repeat == RepeatNone || repeatEnd.IsZero() {
		return dates
	}
	end := midnightUTC(repeatEnd)
	if end.Before(start) {
		return dates
	}

	opt := rrule.ROption{Dtstart: start, Until: end}
	switch repeat {
	case RepeatDaily:
		opt.Freq = rrule.DAILY
	case RepeatWeekly:
		opt.Freq = rrule.WEEKLY
	case RepeatMonthly:
		opt.Freq = rrule.MONTHLY
	case RepeatCustom:
		if len(customDays) == 0 {
			return dates
		}
		opt.Freq = rrule.WEEKLY
		for _, d := range customDays {
			if d >= 0 && d <= 6 {
				opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
			}
		}
	default:
		return dates
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return dates
	}

	// The start date is already in the result; for custom rules it may
	// not even match the weekday set, so it is prepended unconditionally
	// and skipped here if the rule produced it.
	for _, t := range r.Between(start, end, true) {
		if t.Equal(start) {
			continue
		}
		dates = append(dates, t)
	}
	return dates
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
