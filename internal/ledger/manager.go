package ledger

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/model"
	"github.com/username/shift-tracker/internal/storage"
)

// Manager ties together shift storage, the hour classifier and the holiday
// calendar. Every write path re-derives the hour breakdown so stored hours
// never drift from the raw shift fields.
type Manager struct {
	store      *storage.Store
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewManager creates a new shift ledger manager
func NewManager(store *storage.Store, classifier *classify.Classifier, logger *zap.Logger) *Manager {
	return &Manager{
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// AddShift validates, classifies and stores a new shift
func (m *Manager) AddShift(shift model.Shift) (model.Shift, error) {
	if err := shift.Validate(); err != nil {
		return model.Shift{}, fmt.Errorf("invalid shift: %w", err)
	}

	if err := m.classifyInto(&shift); err != nil {
		return model.Shift{}, err
	}

	stored, err := m.store.AddShift(shift)
	if err != nil {
		return model.Shift{}, err
	}

	m.logger.Info("Shift added",
		zap.Int64("id", stored.ID),
		zap.String("date", stored.Date.Format("2006-01-02")),
		zap.String("start", stored.StartTime),
		zap.String("end", stored.EndTime),
		zap.Float64("total_hours", stored.Hours.Total),
		zap.Float64("night_hours", stored.Hours.Night),
		zap.Float64("holiday_hours", stored.Hours.Holiday))

	return stored, nil
}

// UpdateShift validates, reclassifies and stores an edited shift
func (m *Manager) UpdateShift(shift model.Shift) (model.Shift, error) {
	if err := shift.Validate(); err != nil {
		return model.Shift{}, fmt.Errorf("invalid shift: %w", err)
	}

	if err := m.classifyInto(&shift); err != nil {
		return model.Shift{}, err
	}

	if err := m.store.UpdateShift(shift); err != nil {
		return model.Shift{}, err
	}

	m.logger.Info("Shift updated", zap.Int64("id", shift.ID))

	return shift, nil
}

// GetShift loads a single shift by ID
func (m *Manager) GetShift(id int64) (model.Shift, error) {
	return m.store.GetShift(id)
}

// DeleteShift removes a shift by ID
func (m *Manager) DeleteShift(id int64) error {
	if err := m.store.DeleteShift(id); err != nil {
		return err
	}
	m.logger.Info("Shift deleted", zap.Int64("id", id))
	return nil
}

// MonthShifts returns the shifts recorded for the given month, ordered by date
func (m *Manager) MonthShifts(year int, month time.Month) ([]model.Shift, error) {
	return m.store.ListMonth(year, month)
}

// MonthlySummary aggregates the month's shift breakdowns and computes
// overtime against the monthly threshold
func (m *Manager) MonthlySummary(year int, month time.Month) (classify.MonthlyTotals, error) {
	shifts, err := m.store.ListMonth(year, month)
	if err != nil {
		return classify.MonthlyTotals{}, err
	}

	breakdowns := make([]classify.Breakdown, len(shifts))
	for i, shift := range shifts {
		breakdowns[i] = shift.Hours
	}

	return classify.Aggregate(breakdowns), nil
}

// History returns the months that have recorded shifts, most recent first
func (m *Manager) History() ([]storage.MonthSummary, error) {
	return m.store.MonthsWithShifts()
}

// ReclassifyAll recomputes the hour breakdown of every stored shift. Run it
// after the holiday list changes so stored hours match the new calendar.
// Returns the number of shifts whose breakdown changed.
func (m *Manager) ReclassifyAll() (int, error) {
	shifts, err := m.store.ListAll()
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, shift := range shifts {
		previous := shift.Hours

		if err := m.classifyInto(&shift); err != nil {
			return changed, fmt.Errorf("shift %d: %w", shift.ID, err)
		}

		if shift.Hours == previous {
			continue
		}

		if err := m.store.UpdateShift(shift); err != nil {
			return changed, fmt.Errorf("shift %d: %w", shift.ID, err)
		}
		changed++
	}

	m.logger.Info("Shifts reclassified",
		zap.Int("total", len(shifts)),
		zap.Int("changed", changed))

	return changed, nil
}

func (m *Manager) classifyInto(shift *model.Shift) error {
	start, end, err := shift.Clocks()
	if err != nil {
		return fmt.Errorf("invalid shift times: %w", err)
	}

	shift.Hours = m.classifier.Classify(shift.Date, start, end, shift.Holiday)
	return nil
}
