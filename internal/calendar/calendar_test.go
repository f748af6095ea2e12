package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestStaticCalendarWeekends(t *testing.T) {
	cal := NewStaticCalendar(nil)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Saturday is holiday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is holiday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not holiday", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not holiday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
		{"Time of day is ignored", time.Date(2025, 1, 18, 23, 59, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestStaticCalendarListedDates(t *testing.T) {
	cal := NewDefaultCalendar()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Christmas 2025", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"Labour day 2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"Epiphany 2025", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), true},
		{"Plain Wednesday", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestFileCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	content := `# regional holidays
2025-07-25 Santiago Apóstol

2025-04-23
not-a-date
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write holidays file: %v", err)
	}

	fc := NewFileCalendar(path, zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Listed date with note", time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), true},
		{"Listed bare date", time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC), true},
		{"Unlisted weekday", time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC), false},
		{"Weekend still counts", time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fc.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestFileCalendarMissingFile(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())

	if err := fc.Load(); err == nil {
		t.Error("Load() on missing file should fail")
	}
}

func TestCompositeCalendarUnion(t *testing.T) {
	national := NewStaticCalendar([]string{"2025-12-25"})
	regional := NewStaticCalendar([]string{"2025-07-25"})
	cc := NewCompositeCalendar(zap.NewNop(), national, regional)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Date from first source", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"Date from second source", time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC), true},
		{"Date in neither source", time.Date(2025, 7, 23, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cc.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
