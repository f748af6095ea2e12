package model

import (
	"fmt"
	"time"

	"github.com/username/shift-tracker/internal/classify"
)

// Shift is a single recorded work shift. StartTime and EndTime are wall-clock
// HH:MM strings on Date; an end at or before the start means the shift runs
// into the following day. Hours carries the derived classification and is
// recomputed whenever date, times or the holiday flag change.
type Shift struct {
	ID        int64
	Date      time.Time
	StartTime string
	EndTime   string
	Holiday   bool
	Notes     string
	Hours     classify.Breakdown
}

// Validate checks the caller-supplied fields before classification.
// A zero-duration shift (start == end would wrap to a full day) is rejected
// rather than silently classified.
func (s *Shift) Validate() error {
	if s.Date.IsZero() {
		return fmt.Errorf("shift date is required")
	}

	start, err := classify.ParseClock(s.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}

	end, err := classify.ParseClock(s.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	if start == end {
		return fmt.Errorf("start and end time are both %s: zero-duration shift", start)
	}

	return nil
}

// Clocks returns the parsed start and end clocks. Callers must Validate first.
func (s *Shift) Clocks() (classify.Clock, classify.Clock, error) {
	start, err := classify.ParseClock(s.StartTime)
	if err != nil {
		return classify.Clock{}, classify.Clock{}, err
	}
	end, err := classify.ParseClock(s.EndTime)
	if err != nil {
		return classify.Clock{}, classify.Clock{}, err
	}
	return start, end, nil
}
