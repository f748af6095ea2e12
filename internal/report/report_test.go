package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/model"
)

func sampleShifts() []model.Shift {
	return []model.Shift{
		{
			ID:        1,
			Date:      time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local),
			StartTime: "08:00",
			EndTime:   "16:00",
			Notes:     "Centro Comercial",
			Hours:     classify.Breakdown{Total: 8, Normal: 8},
		},
		{
			ID:        2,
			Date:      time.Date(2025, time.January, 18, 0, 0, 0, 0, time.Local),
			StartTime: "22:00",
			EndTime:   "06:00",
			Holiday:   true,
			Hours:     classify.Breakdown{Total: 8, Night: 8, Holiday: 8},
		},
	}
}

func sampleTotals() classify.MonthlyTotals {
	return classify.MonthlyTotals{Total: 16, Normal: 8, Night: 8, Holiday: 8}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Enero"},
		{time.August, "Agosto"},
		{time.December, "Diciembre"},
	}

	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%v) = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(2025, time.January); got != "Registro_Horas_Enero_2025" {
		t.Errorf("Filename = %v, want Registro_Horas_Enero_2025", got)
	}
}

func TestServiceTotals(t *testing.T) {
	totals := ServiceTotals(sampleShifts())

	if totals["Centro Comercial"] != 8 {
		t.Errorf("Centro Comercial = %v, want 8", totals["Centro Comercial"])
	}
	if totals["Sin Servicio"] != 8 {
		t.Errorf("Sin Servicio = %v, want 8", totals["Sin Servicio"])
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	profile := Profile{Name: "Ana García", TIP: "12345"}

	WriteText(&buf, 2025, time.January, sampleShifts(), sampleTotals(), profile)
	out := buf.String()

	for _, want := range []string{
		"Enero 2025",
		"Trabajador: Ana García",
		"TIP: 12345",
		"2025-01-15",
		"2025-01-18 (F)",
		"Centro Comercial",
		"Nocturnas:    8.00h",
		"Extras:       0.00h",
		"Por Servicio",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteText output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextEmptyMonth(t *testing.T) {
	var buf bytes.Buffer

	WriteText(&buf, 2025, time.June, nil, classify.MonthlyTotals{}, Profile{})

	if !strings.Contains(buf.String(), "No hay turnos este mes.") {
		t.Errorf("WriteText on empty month missing placeholder:\n%s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteCSV(&buf, sampleShifts()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("CSV has %d rows, want 3 (header + 2 shifts)", len(records))
	}
	if records[0][0] != "date" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "2025-01-15" || records[1][4] != "8.00" {
		t.Errorf("unexpected first record: %v", records[1])
	}
	if records[2][3] != "true" || records[2][6] != "8.00" {
		t.Errorf("unexpected second record: %v", records[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	profile := Profile{Name: "Ana García", TIP: "12345"}

	if err := WriteXLSX(path, 2025, time.January, sampleShifts(), sampleTotals(), profile); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if !strings.Contains(title, "Enero 2025") {
		t.Errorf("title = %q, want it to mention Enero 2025", title)
	}

	// With both profile lines set, the table header lands on row 6.
	header, err := f.GetCellValue(sheet, "A6")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if header != "Fecha" {
		t.Errorf("header cell A6 = %q, want Fecha", header)
	}

	firstDate, err := f.GetCellValue(sheet, "A7")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if firstDate != "15/01" {
		t.Errorf("first data cell A7 = %q, want 15/01", firstDate)
	}
}
