package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/sleepdebt/internal/config"
	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export augmented sleep-nights to JSON or CSV",
	Long: `Export the augmented sleep-night table for external analysis.

Examples:
  sleepdebt export --format json --output nights.json
  sleepdebt export --format csv --output nights.csv
  sleepdebt export --format csv                         # To stdout`,
	RunE: runExport,
}

// Flags
var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

type ExportNight struct {
	Date           string  `json:"date"`
	SleepHours     float64 `json:"sleep_hours"`
	SleepDelta     float64 `json:"sleep_delta"`
	CumulativeDebt float64 `json:"cumulative_debt"`
	Rolling14dDebt float64 `json:"rolling_14d_debt"`
	Rolling7dSleep float64 `json:"rolling_7d_sleep"`
	Status         string  `json:"status"`
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	nights, err := loadNights(cfg)
	if err != nil {
		return err
	}

	var output *os.File
	if exportOutput != "" {
		output, err = os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = output.Close() }()
	} else {
		output = os.Stdout
	}

	return writeExport(output, exportFormat, exportRows(nights))
}

func exportRows(nights []sleep.Night) []ExportNight {
	rows := make([]ExportNight, 0, len(nights))
	for _, n := range nights {
		rows = append(rows, ExportNight{
			Date:           n.Date.Format("2006-01-02"),
			SleepHours:     n.SleepHours,
			SleepDelta:     n.SleepDelta,
			CumulativeDebt: n.CumulativeDebt,
			Rolling14dDebt: n.Rolling14dDebt,
			Rolling7dSleep: n.Rolling7dSleep,
			Status:         string(n.Status),
		})
	}
	return rows
}

func writeExport(w io.Writer, format string, rows []ExportNight) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case "csv":
		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{
			"date", "sleep_hours", "sleep_delta", "cumulative_debt",
			"rolling_14d_debt", "rolling_7d_sleep", "status",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, r := range rows {
			record := []string{
				r.Date,
				formatHours(r.SleepHours),
				formatHours(r.SleepDelta),
				formatHours(r.CumulativeDebt),
				formatHours(r.Rolling14dDebt),
				formatHours(r.Rolling7dSleep),
				r.Status,
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown format %q (expected json or csv)", format)
	}
	return nil
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
