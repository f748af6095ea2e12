package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/username/shift-tracker/internal/drive"
	"github.com/username/shift-tracker/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		monthStr string
		format   string
		upload   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the monthly report",
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
			if len(shifts) == 0 {
				return fmt.Errorf("no hay turnos para exportar en %s", report.Title(year, month))
			}

			totals, err := a.manager.MonthlySummary(year, month)
			if err != nil {
				return err
			}

			profile := report.Profile{Name: a.cfg.Worker.Name, TIP: a.cfg.Worker.TIP}

			var outputPath string
			switch format {
			case "text":
				report.WriteText(os.Stdout, year, month, shifts, totals, profile)

			case "csv":
				outputPath = filepath.Join(a.cfg.Report.GetOutputDir(),
					report.Filename(year, month)+".csv")
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outputPath, err)
				}
				if err := report.WriteCSV(f, shifts); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to close %s: %w", outputPath, err)
				}
				fmt.Printf("Report written to %s\n", outputPath)

			case "xlsx":
				outputPath = filepath.Join(a.cfg.Report.GetOutputDir(),
					report.Filename(year, month)+".xlsx")
				if err := report.WriteXLSX(outputPath, year, month, shifts, totals, profile); err != nil {
					return err
				}
				fmt.Printf("Report written to %s\n", outputPath)

			default:
				return fmt.Errorf("unknown format %q: expected text, csv or xlsx", format)
			}

			if upload {
				if outputPath == "" {
					return fmt.Errorf("--upload requires an exported file; use --format csv or xlsx")
				}
				if !a.cfg.Drive.Enabled {
					return fmt.Errorf("drive upload is not enabled; set drive.enabled and drive.client_id in the config")
				}

				client := drive.NewClient(
					a.cfg.Drive.ClientID,
					a.cfg.Drive.ClientSecret,
					a.cfg.Drive.GetTokenFile(),
					logger,
				)

				fileID, err := client.Upload(context.Background(), outputPath, filepath.Base(outputPath))
				if err != nil {
					return fmt.Errorf("drive upload failed: %w", err)
				}

				fmt.Printf("Uploaded to Drive (file id %s)\n", fileID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "Month to export (YYYY-MM, default current)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, csv, xlsx")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload the exported file to Google Drive")

	return cmd
}
