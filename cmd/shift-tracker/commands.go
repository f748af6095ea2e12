package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/username/shift-tracker/internal/model"
	"github.com/username/shift-tracker/internal/report"
	"github.com/username/shift-tracker/pkg/dateutil"
)

func addCmd() *cobra.Command {
	var (
		dateStr string
		start   string
		end     string
		holiday bool
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			date := dateutil.Today()
			if dateStr != "" {
				date, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}

			// Mirror the form's auto-detection: when the flag is not given
			// explicitly, weekends and listed holidays mark the shift festive.
			if !cmd.Flags().Changed("holiday") {
				holiday = a.cal.IsHoliday(date)
			}

			shift := model.Shift{
				Date:      date,
				StartTime: start,
				EndTime:   end,
				Holiday:   holiday,
				Notes:     notes,
			}

			stored, err := a.manager.AddShift(shift)
			if err != nil {
				return err
			}

			fmt.Printf("Shift %d recorded: %s %s-%s (%.2fh total, %.2fh night, %.2fh holiday)\n",
				stored.ID,
				stored.Date.Format("2006-01-02"),
				stored.StartTime,
				stored.EndTime,
				stored.Hours.Total,
				stored.Hours.Night,
				stored.Hours.Holiday)

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM); at or before start means the shift crosses midnight")
	cmd.Flags().BoolVar(&holiday, "holiday", false, "Mark the shift as a holiday shift (auto-detected when omitted)")
	cmd.Flags().StringVar(&notes, "notes", "", "Service note")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func editCmd() *cobra.Command {
	var (
		dateStr string
		start   string
		end     string
		holiday bool
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recorded shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid shift id %q", args[0])
			}

			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			shift, err := a.manager.GetShift(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("date") {
				shift.Date, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}
			if cmd.Flags().Changed("start") {
				shift.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				shift.EndTime = end
			}
			if cmd.Flags().Changed("holiday") {
				shift.Holiday = holiday
			}
			if cmd.Flags().Changed("notes") {
				shift.Notes = notes
			}

			updated, err := a.manager.UpdateShift(shift)
			if err != nil {
				return err
			}

			fmt.Printf("Shift %d updated: %s %s-%s (%.2fh total, %.2fh night, %.2fh holiday)\n",
				updated.ID,
				updated.Date.Format("2006-01-02"),
				updated.StartTime,
				updated.EndTime,
				updated.Hours.Total,
				updated.Hours.Night,
				updated.Hours.Holiday)

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().BoolVar(&holiday, "holiday", false, "Mark the shift as a holiday shift")
	cmd.Flags().StringVar(&notes, "notes", "", "Service note")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid shift id %q", args[0])
			}

			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			if err := a.manager.DeleteShift(id); err != nil {
				return err
			}

			fmt.Printf("Shift %d deleted\n", id)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the month's shifts with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(monthStr)
			if err != nil {
				return err
			}

			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			shifts, err := a.manager.MonthShifts(year, month)
			if err != nil {
				return err
			}

			totals, err := a.manager.MonthlySummary(year, month)
			if err != nil {
				return err
			}

			profile := report.Profile{Name: a.cfg.Worker.Name, TIP: a.cfg.Worker.TIP}
			report.WriteText(os.Stdout, year, month, shifts, totals, profile)

			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to list (YYYY-MM, default current)")

	return cmd
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List months with recorded shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			months, err := a.manager.History()
			if err != nil {
				return err
			}

			if len(months) == 0 {
				fmt.Println("No hay registros históricos")
				return nil
			}

			for _, m := range months {
				fmt.Printf("%-18s %3d turnos  %8.2fh totales\n",
					report.Title(m.Year, m.Month), m.Count, m.TotalHours)
			}

			return nil
		},
	}
}

func reclassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reclassify",
		Short: "Recompute every shift's hour breakdown against the current holiday list",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initializeApp()
			if err != nil {
				return err
			}
			defer a.shutdown()

			changed, err := a.manager.ReclassifyAll()
			if err != nil {
				return err
			}

			fmt.Printf("Reclassification complete: %d shift(s) changed\n", changed)
			return nil
		},
	}
}
