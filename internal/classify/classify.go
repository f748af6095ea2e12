package classify

import (
	"fmt"
	"math"
	"time"

	"github.com/username/shift-tracker/internal/calendar"
	"github.com/username/shift-tracker/pkg/dateutil"
)

const (
	// NightStartHour is the start of the night window (22:00)
	NightStartHour = 22
	// NightEndHour is the end of the night window (06:00)
	NightEndHour = 6
	// MonthlyHoursThreshold is the standard monthly hours for security guards;
	// anything above it counts as overtime
	MonthlyHoursThreshold = 162.0

	// nightPromotionHours is the raw night-hour count at which the whole
	// shift is reported as a night shift
	nightPromotionHours = 4.0
	// nightCapHours caps the promoted night hours
	nightCapHours = 8.0
)

// Clock is a wall-clock time of day without a date
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a Clock
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time %q: hour must be 0-23 and minute 0-59", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String formats the clock as HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Breakdown is the per-shift hour classification. Holiday and night hours are
// not mutually exclusive at the minute level, so Normal+Night need not equal
// Total when holiday hours are present. Overtime is always 0 per shift; it
// only exists at the monthly level.
type Breakdown struct {
	Total    float64 `json:"total"`
	Normal   float64 `json:"normal"`
	Night    float64 `json:"night"`
	Holiday  float64 `json:"holiday"`
	Overtime float64 `json:"overtime"`
}

// MonthlyTotals aggregates shift breakdowns for one calendar month
type MonthlyTotals struct {
	Total    float64 `json:"total"`
	Normal   float64 `json:"normal"`
	Night    float64 `json:"night"`
	Holiday  float64 `json:"holiday"`
	Overtime float64 `json:"overtime"`
}

// Classifier splits shifts into normal, night and holiday hours using the
// Spanish security-guard conventions
type Classifier struct {
	cal calendar.Calendar
}

// NewClassifier creates a new Classifier backed by the given holiday calendar
func NewClassifier(cal calendar.Calendar) *Classifier {
	return &Classifier{cal: cal}
}

// Classify computes the hour breakdown of a single shift. Start and end are
// interpreted on date; when end <= start the shift crosses midnight into the
// following day. Shifts are bounded to 24h by construction.
//
// The walk is minute by minute on purpose: the night window, per-day holiday
// detection and the start-day scoping of the manual holiday flag interact at
// both the day boundary and the night-window boundary, and a closed-form
// interval split would have to handle every combination of the two.
func (c *Classifier) Classify(date time.Time, start, end Clock, holidayOverride bool) Breakdown {
	startAt := time.Date(date.Year(), date.Month(), date.Day(),
		start.Hour, start.Minute, 0, 0, time.Local)
	endAt := time.Date(date.Year(), date.Month(), date.Day(),
		end.Hour, end.Minute, 0, 0, time.Local)

	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	totalHours := endAt.Sub(startAt).Hours()

	var nightMinutes, holidayMinutes, normalMinutes int

	for m := startAt; m.Before(endAt); m = m.Add(time.Minute) {
		hour := m.Hour()
		isNight := hour >= NightStartHour || hour < NightEndHour

		isHolidayMinute := c.cal.IsHoliday(m)

		// The manual holiday flag applies only to the shift's start day so a
		// Sunday night shift does not mark Monday morning as festive.
		if holidayOverride && !isHolidayMinute && dateutil.IsSameDay(m, startAt) {
			isHolidayMinute = true
		}

		if isNight {
			nightMinutes++
		}
		if isHolidayMinute {
			holidayMinutes++
		} else if !isNight {
			normalMinutes++
		}
	}

	nightHours := float64(nightMinutes) / 60
	holidayHours := float64(holidayMinutes) / 60
	normalHours := float64(normalMinutes) / 60

	// Spanish security convention: 4+ night hours promote the full shift to a
	// night shift, capped at 8h.
	if nightHours >= nightPromotionHours {
		nightHours = math.Min(totalHours, nightCapHours)

		// Rebalance normal hours only in the pure-night case. When holiday
		// hours are present they take precedence over normal and the night
		// supplement is compatible with them, so the accumulated values stand
		// even though Normal+Night+Holiday may then exceed Total.
		if !holidayOverride && holidayMinutes == 0 {
			normalHours = math.Max(0, totalHours-nightHours)
		}
	}

	return Breakdown{
		Total:    round2(totalHours),
		Normal:   round2(normalHours),
		Night:    round2(nightHours),
		Holiday:  round2(holidayHours),
		Overtime: 0,
	}
}

// Aggregate sums shift breakdowns into monthly totals and computes overtime
// against the 162-hour threshold. An empty input yields all-zero totals.
func Aggregate(breakdowns []Breakdown) MonthlyTotals {
	var totals MonthlyTotals
	for _, b := range breakdowns {
		totals.Total += b.Total
		totals.Normal += b.Normal
		totals.Night += b.Night
		totals.Holiday += b.Holiday
	}
	totals.Overtime = math.Max(0, totals.Total-MonthlyHoursThreshold)
	return totals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
