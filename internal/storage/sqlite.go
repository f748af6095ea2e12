package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/username/shift-tracker/internal/model"
)

const createShiftsTable = `
CREATE TABLE IF NOT EXISTS shifts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    holiday BOOLEAN NOT NULL DEFAULT 0,
    notes TEXT NOT NULL DEFAULT '',
    total_hours REAL NOT NULL DEFAULT 0,
    normal_hours REAL NOT NULL DEFAULT 0,
    night_hours REAL NOT NULL DEFAULT 0,
    holiday_hours REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
`

// MonthSummary describes one month that has recorded shifts
type MonthSummary struct {
	Year       int
	Month      time.Month
	Count      int
	TotalHours float64
}

// Store persists shifts in a local SQLite database
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (or creates) the database at path and runs migrations
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createShiftsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Shift database opened", zap.String("path", path))

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// AddShift inserts a shift and returns it with the assigned ID
func (s *Store) AddShift(shift model.Shift) (model.Shift, error) {
	res, err := s.db.Exec(
		`INSERT INTO shifts (date, start_time, end_time, holiday, notes,
		    total_hours, normal_hours, night_hours, holiday_hours)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shift.Date.Format("2006-01-02"),
		shift.StartTime,
		shift.EndTime,
		shift.Holiday,
		shift.Notes,
		shift.Hours.Total,
		shift.Hours.Normal,
		shift.Hours.Night,
		shift.Hours.Holiday,
	)
	if err != nil {
		return model.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Shift{}, fmt.Errorf("failed to read inserted id: %w", err)
	}
	shift.ID = id

	return shift, nil
}

// UpdateShift replaces a stored shift by ID
func (s *Store) UpdateShift(shift model.Shift) error {
	res, err := s.db.Exec(
		`UPDATE shifts SET date = ?, start_time = ?, end_time = ?, holiday = ?, notes = ?,
		    total_hours = ?, normal_hours = ?, night_hours = ?, holiday_hours = ?
		 WHERE id = ?`,
		shift.Date.Format("2006-01-02"),
		shift.StartTime,
		shift.EndTime,
		shift.Holiday,
		shift.Notes,
		shift.Hours.Total,
		shift.Hours.Normal,
		shift.Hours.Night,
		shift.Hours.Holiday,
		shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("shift %d not found", shift.ID)
	}

	return nil
}

// DeleteShift removes a shift by ID
func (s *Store) DeleteShift(id int64) error {
	res, err := s.db.Exec(`DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("shift %d not found", id)
	}

	return nil
}

// GetShift loads a single shift by ID
func (s *Store) GetShift(id int64) (model.Shift, error) {
	row := s.db.QueryRow(
		`SELECT id, date, start_time, end_time, holiday, notes,
		    total_hours, normal_hours, night_hours, holiday_hours
		 FROM shifts WHERE id = ?`, id)

	shift, err := scanShift(row)
	if err == sql.ErrNoRows {
		return model.Shift{}, fmt.Errorf("shift %d not found", id)
	}
	if err != nil {
		return model.Shift{}, fmt.Errorf("failed to load shift: %w", err)
	}

	return shift, nil
}

// ListMonth returns all shifts whose date falls in the given month,
// ordered by date
func (s *Store) ListMonth(year int, month time.Month) ([]model.Shift, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	rows, err := s.db.Query(
		`SELECT id, date, start_time, end_time, holiday, notes,
		    total_hours, normal_hours, night_hours, holiday_hours
		 FROM shifts WHERE date BETWEEN ? AND ? ORDER BY date, start_time`,
		first.Format("2006-01-02"),
		last.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

// ListAll returns every stored shift ordered by date
func (s *Store) ListAll() ([]model.Shift, error) {
	rows, err := s.db.Query(
		`SELECT id, date, start_time, end_time, holiday, notes,
		    total_hours, normal_hours, night_hours, holiday_hours
		 FROM shifts ORDER BY date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

// MonthsWithShifts returns the months that have recorded shifts,
// most recent first
func (s *Store) MonthsWithShifts() ([]MonthSummary, error) {
	rows, err := s.db.Query(
		`SELECT substr(date, 1, 4), substr(date, 6, 2), COUNT(*), SUM(total_hours)
		 FROM shifts
		 GROUP BY substr(date, 1, 7)
		 ORDER BY substr(date, 1, 7) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var months []MonthSummary
	for rows.Next() {
		var yearStr, monthStr string
		var summary MonthSummary
		if err := rows.Scan(&yearStr, &monthStr, &summary.Count, &summary.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		t, err := time.Parse("2006-01", yearStr+"-"+monthStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history month: %w", err)
		}
		summary.Year = t.Year()
		summary.Month = t.Month()
		months = append(months, summary)
	}

	return months, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (model.Shift, error) {
	var shift model.Shift
	var dateStr string

	err := row.Scan(
		&shift.ID,
		&dateStr,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Holiday,
		&shift.Notes,
		&shift.Hours.Total,
		&shift.Hours.Normal,
		&shift.Hours.Night,
		&shift.Hours.Holiday,
	)
	if err != nil {
		return model.Shift{}, err
	}

	shift.Date, err = time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return model.Shift{}, err
	}

	return shift, nil
}
