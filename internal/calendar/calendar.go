package calendar

import (
	"time"

	"github.com/username/shift-tracker/pkg/dateutil"
)

// Calendar answers whether a given instant falls on a holiday.
// Only the calendar-date portion of the instant is examined.
type Calendar interface {
	IsHoliday(t time.Time) bool
}

// spanishHolidays lists the national holidays shipped with the application.
// Format: YYYY-MM-DD.
var spanishHolidays = []string{
	"2024-01-01", "2024-01-06", "2024-03-28", "2024-03-29", "2024-05-01",
	"2024-08-15", "2024-10-12", "2024-11-01", "2024-12-06", "2024-12-08", "2024-12-25",
	"2025-01-01", "2025-01-06", "2025-04-17", "2025-04-18", "2025-05-01",
	"2025-08-15", "2025-10-12", "2025-11-01", "2025-12-06", "2025-12-08", "2025-12-25",
}

// StaticCalendar implements Calendar over a fixed set of holiday dates
// plus weekend detection.
type StaticCalendar struct {
	dates map[string]struct{}
}

// NewStaticCalendar creates a StaticCalendar from a list of YYYY-MM-DD dates
func NewStaticCalendar(dates []string) *StaticCalendar {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return &StaticCalendar{dates: set}
}

// NewDefaultCalendar creates a StaticCalendar with the built-in
// Spanish national holiday list
func NewDefaultCalendar() *StaticCalendar {
	return NewStaticCalendar(spanishHolidays)
}

// IsHoliday reports whether t falls on a weekend or a listed holiday
func (c *StaticCalendar) IsHoliday(t time.Time) bool {
	if dateutil.IsWeekend(t) {
		return true
	}
	_, ok := c.dates[dateutil.FormatDate(t)]
	return ok
}

// Dates returns the configured holiday dates, unordered
func (c *StaticCalendar) Dates() []string {
	dates := make([]string, 0, len(c.dates))
	for d := range c.dates {
		dates = append(dates, d)
	}
	return dates
}
