package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/shift-tracker/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file of holiday dates.
// The file holds one YYYY-MM-DD date per line; blank lines and lines starting
// with # are ignored. Weekends count as holidays regardless of file content.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	dates    map[string]struct{}
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		dates:    make(map[string]struct{}),
	}
}

// Load loads holiday dates from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// A line may carry a description after the date: "2025-07-25 Santiago Apóstol"
		dateStr := line
		if idx := strings.IndexByte(line, ' '); idx > 0 {
			dateStr = line[:idx]
		}

		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			fc.logger.Warn("Skipping invalid holiday date",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		fc.dates[dateStr] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holidays file: %w", err)
	}

	fc.logger.Info("Holidays file loaded",
		zap.String("file", fc.filePath),
		zap.Int("dates", len(fc.dates)))

	return nil
}

// IsHoliday reports whether t falls on a weekend or a date listed in the file
func (fc *FileCalendar) IsHoliday(t time.Time) bool {
	if dateutil.IsWeekend(t) {
		return true
	}
	_, ok := fc.dates[dateutil.FormatDate(t)]
	return ok
}
