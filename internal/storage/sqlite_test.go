package storage

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:", zap.NewNop())
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testShift(day int, start, end string, total float64) model.Shift {
	return model.Shift{
		Date:      time.Date(2025, time.January, day, 0, 0, 0, 0, time.Local),
		StartTime: start,
		EndTime:   end,
		Notes:     "Centro Comercial",
		Hours:     classify.Breakdown{Total: total, Normal: total},
	}
}

func TestAddAndGetShift(t *testing.T) {
	store := openTestStore(t)

	stored, err := store.AddShift(testShift(15, "08:00", "16:00", 8))
	if err != nil {
		t.Fatalf("AddShift failed: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("AddShift did not assign an ID")
	}

	loaded, err := store.GetShift(stored.ID)
	if err != nil {
		t.Fatalf("GetShift failed: %v", err)
	}

	if !loaded.Date.Equal(stored.Date) ||
		loaded.StartTime != "08:00" ||
		loaded.EndTime != "16:00" ||
		loaded.Notes != "Centro Comercial" ||
		loaded.Hours.Total != 8 {
		t.Errorf("loaded shift differs: %+v", loaded)
	}
}

func TestUpdateShift(t *testing.T) {
	store := openTestStore(t)

	stored, err := store.AddShift(testShift(15, "08:00", "16:00", 8))
	if err != nil {
		t.Fatalf("AddShift failed: %v", err)
	}

	stored.EndTime = "20:00"
	stored.Hours = classify.Breakdown{Total: 12, Normal: 12}
	if err := store.UpdateShift(stored); err != nil {
		t.Fatalf("UpdateShift failed: %v", err)
	}

	loaded, err := store.GetShift(stored.ID)
	if err != nil {
		t.Fatalf("GetShift failed: %v", err)
	}
	if loaded.EndTime != "20:00" || loaded.Hours.Total != 12 {
		t.Errorf("update not persisted: %+v", loaded)
	}
}

func TestUpdateMissingShift(t *testing.T) {
	store := openTestStore(t)

	shift := testShift(15, "08:00", "16:00", 8)
	shift.ID = 999

	if err := store.UpdateShift(shift); err == nil {
		t.Error("UpdateShift on missing row should fail")
	}
}

func TestDeleteShift(t *testing.T) {
	store := openTestStore(t)

	stored, err := store.AddShift(testShift(15, "08:00", "16:00", 8))
	if err != nil {
		t.Fatalf("AddShift failed: %v", err)
	}

	if err := store.DeleteShift(stored.ID); err != nil {
		t.Fatalf("DeleteShift failed: %v", err)
	}

	if _, err := store.GetShift(stored.ID); err == nil {
		t.Error("GetShift after delete should fail")
	}

	if err := store.DeleteShift(stored.ID); err == nil {
		t.Error("DeleteShift on missing row should fail")
	}
}

func TestListMonthFiltersAndOrders(t *testing.T) {
	store := openTestStore(t)

	shifts := []model.Shift{
		testShift(20, "08:00", "16:00", 8),
		testShift(5, "08:00", "16:00", 8),
		{
			Date:      time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local),
			StartTime: "08:00",
			EndTime:   "16:00",
			Hours:     classify.Breakdown{Total: 8, Normal: 8},
		},
	}
	for _, s := range shifts {
		if _, err := store.AddShift(s); err != nil {
			t.Fatalf("AddShift failed: %v", err)
		}
	}

	january, err := store.ListMonth(2025, time.January)
	if err != nil {
		t.Fatalf("ListMonth failed: %v", err)
	}

	if len(january) != 2 {
		t.Fatalf("ListMonth returned %d shifts, want 2", len(january))
	}
	if january[0].Date.Day() != 5 || january[1].Date.Day() != 20 {
		t.Errorf("shifts not ordered by date: %v, %v",
			january[0].Date.Format("2006-01-02"), january[1].Date.Format("2006-01-02"))
	}
}

func TestMonthsWithShifts(t *testing.T) {
	store := openTestStore(t)

	dates := []time.Time{
		time.Date(2024, time.December, 10, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.Local),
	}
	for _, d := range dates {
		shift := model.Shift{
			Date:      d,
			StartTime: "08:00",
			EndTime:   "16:00",
			Hours:     classify.Breakdown{Total: 8, Normal: 8},
		}
		if _, err := store.AddShift(shift); err != nil {
			t.Fatalf("AddShift failed: %v", err)
		}
	}

	months, err := store.MonthsWithShifts()
	if err != nil {
		t.Fatalf("MonthsWithShifts failed: %v", err)
	}

	if len(months) != 2 {
		t.Fatalf("MonthsWithShifts returned %d months, want 2", len(months))
	}

	// Most recent first
	if months[0].Year != 2025 || months[0].Month != time.January ||
		months[0].Count != 2 || months[0].TotalHours != 16 {
		t.Errorf("unexpected first month summary: %+v", months[0])
	}
	if months[1].Year != 2024 || months[1].Month != time.December || months[1].Count != 1 {
		t.Errorf("unexpected second month summary: %+v", months[1])
	}
}
