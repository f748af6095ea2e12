package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar as the union of several sources.
// A date is a holiday if any member calendar classifies it as one; this lets
// a user-supplied regional holidays file extend the built-in national list.
type CompositeCalendar struct {
	sources []Calendar
	logger  *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, sources ...Calendar) *CompositeCalendar {
	return &CompositeCalendar{
		sources: sources,
		logger:  logger,
	}
}

// IsHoliday reports whether any member calendar classifies t as a holiday
func (cc *CompositeCalendar) IsHoliday(t time.Time) bool {
	for _, src := range cc.sources {
		if src.IsHoliday(t) {
			return true
		}
	}
	return false
}

// LoadFiles loads every FileCalendar member
func (cc *CompositeCalendar) LoadFiles() error {
	for _, src := range cc.sources {
		fc, ok := src.(*FileCalendar)
		if !ok {
			continue
		}
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load holidays file: %w", err)
		}
	}
	cc.logger.Info("Calendar sources loaded", zap.Int("sources", len(cc.sources)))
	return nil
}
