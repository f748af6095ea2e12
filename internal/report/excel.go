package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/model"
)

// WriteXLSX renders the monthly report to an Excel workbook at path
func WriteXLSX(path string, year int, month time.Month, shifts []model.Shift,
	totals classify.MonthlyTotals, profile Profile) error {

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "Registro de Horas - "+Title(year, month))
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	row := 3
	if profile.Name != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Trabajador:")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), profile.Name)
		row++
	}
	if profile.TIP != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "TIP:")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), profile.TIP)
		row++
	}
	row++

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DC2626"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Fecha", "Entrada", "Salida", "Total", "Nocturnas", "Festivas", "Servicio"}
	headerRow := row
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, header)
	}
	firstCell, _ := excelize.CoordinatesToCellName(1, headerRow)
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	f.SetCellStyle(sheet, firstCell, lastCell, headerStyle)

	row++
	for _, shift := range shifts {
		date := shift.Date.Format("02/01")
		if shift.Holiday {
			date += " (F)"
		}
		service := shift.Notes
		if service == "" {
			service = "-"
		}

		values := []any{
			date,
			shift.StartTime,
			shift.EndTime,
			shift.Hours.Total,
			shift.Hours.Night,
			shift.Hours.Holiday,
			service,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	row++
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create summary style: %w", err)
	}

	summaryCell := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, summaryCell, "Resumen")
	f.SetCellStyle(sheet, summaryCell, summaryCell, boldStyle)
	row++

	summary := []struct {
		label string
		value float64
	}{
		{"Total", totals.Total},
		{"Nocturnas", totals.Night},
		{"Festivas", totals.Holiday},
		{"Extras", totals.Overtime},
	}
	for _, line := range summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.value)
		row++
	}

	row++
	serviceCell := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, serviceCell, "Por Servicio")
	f.SetCellStyle(sheet, serviceCell, serviceCell, boldStyle)
	row++

	serviceTotals := ServiceTotals(shifts)
	for _, service := range sortedServices(serviceTotals) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), service)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), serviceTotals[service])
		row++
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "G", 12)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
