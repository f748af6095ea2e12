package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/username/shift-tracker/internal/classify"
	"github.com/username/shift-tracker/internal/model"
)

// Profile carries the worker identification printed on exported reports
type Profile struct {
	Name string
	TIP  string
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name of the given month
func MonthName(month time.Month) string {
	return monthNames[int(month)-1]
}

// Title returns the report heading for a month, e.g. "Enero 2025"
func Title(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// Filename returns the export file name for a month without extension,
// e.g. "Registro_Horas_Enero_2025"
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("Registro_Horas_%s_%d", MonthName(month), year)
}

// ServiceTotals sums total hours per service note. Shifts without a note are
// grouped under "Sin Servicio".
func ServiceTotals(shifts []model.Shift) map[string]float64 {
	totals := make(map[string]float64)
	for _, shift := range shifts {
		service := shift.Notes
		if service == "" {
			service = "Sin Servicio"
		}
		totals[service] += shift.Hours.Total
	}
	return totals
}

func sortedServices(totals map[string]float64) []string {
	services := make([]string, 0, len(totals))
	for service := range totals {
		services = append(services, service)
	}
	sort.Strings(services)
	return services
}

// WriteText renders the monthly report as a plain-text table
func WriteText(w io.Writer, year int, month time.Month, shifts []model.Shift,
	totals classify.MonthlyTotals, profile Profile) {

	fmt.Fprintf(w, "Registro de Horas - %s\n", Title(year, month))
	if profile.Name != "" {
		fmt.Fprintf(w, "Trabajador: %s\n", profile.Name)
	}
	if profile.TIP != "" {
		fmt.Fprintf(w, "TIP: %s\n", profile.TIP)
	}
	fmt.Fprintln(w)

	if len(shifts) == 0 {
		fmt.Fprintln(w, "No hay turnos este mes.")
		return
	}

	fmt.Fprintln(w, "  ID | Fecha      | Entrada | Salida | Total   | Nocturnas | Festivas | Servicio")
	fmt.Fprintln(w, "-----+------------+---------+--------+---------+-----------+----------+----------------")
	for _, shift := range shifts {
		marker := ""
		if shift.Holiday {
			marker = " (F)"
		}
		service := shift.Notes
		if service == "" {
			service = "-"
		}
		fmt.Fprintf(w, "%4d | %s%-4s | %7s | %6s | %6.2fh | %8.2fh | %7.2fh | %s\n",
			shift.ID,
			shift.Date.Format("2006-01-02"),
			marker,
			shift.StartTime,
			shift.EndTime,
			shift.Hours.Total,
			shift.Hours.Night,
			shift.Hours.Holiday,
			service)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resumen")
	fmt.Fprintln(w, "═══════════════════════════")
	fmt.Fprintf(w, "  Total:     %7.2fh\n", totals.Total)
	fmt.Fprintf(w, "  Nocturnas: %7.2fh\n", totals.Night)
	fmt.Fprintf(w, "  Festivas:  %7.2fh\n", totals.Holiday)
	fmt.Fprintf(w, "  Extras:    %7.2fh\n", totals.Overtime)

	serviceTotals := ServiceTotals(shifts)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Por Servicio")
	fmt.Fprintln(w, "═══════════════════════════")
	for _, service := range sortedServices(serviceTotals) {
		fmt.Fprintf(w, "  %s: %.2fh\n", service, serviceTotals[service])
	}
}

// WriteCSV renders the month's shifts as CSV
func WriteCSV(w io.Writer, shifts []model.Shift) error {
	cw := csv.NewWriter(w)

	header := []string{"date", "start", "end", "holiday", "total_hours",
		"normal_hours", "night_hours", "holiday_hours", "notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, shift := range shifts {
		record := []string{
			shift.Date.Format("2006-01-02"),
			shift.StartTime,
			shift.EndTime,
			strconv.FormatBool(shift.Holiday),
			formatHours(shift.Hours.Total),
			formatHours(shift.Hours.Normal),
			formatHours(shift.Hours.Night),
			formatHours(shift.Hours.Holiday),
			shift.Notes,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
