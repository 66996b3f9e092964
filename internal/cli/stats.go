package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/sleepdebt/internal/config"
	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show sleep statistics",
	Long: `Show a summary of the augmented sleep-night table.

Examples:
  sleepdebt stats   # Summary for the export in the working directory`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

var (
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// Summary holds the aggregate figures printed by the stats command.
type Summary struct {
	Nights         int
	From           time.Time
	To             time.Time
	AvgSleep       float64
	BelowTarget    int
	Rolling7dSleep float64
	Rolling14dDebt float64
	CumulativeDebt float64
}

func summarize(nights []sleep.Night) Summary {
	s := Summary{Nights: len(nights)}
	if len(nights) == 0 {
		return s
	}

	s.From = nights[0].Date
	s.To = nights[len(nights)-1].Date

	var total float64
	for _, n := range nights {
		total += n.SleepHours
		if n.Status == sleep.StatusBelowTarget {
			s.BelowTarget++
		}
	}
	s.AvgSleep = total / float64(len(nights))

	last := nights[len(nights)-1]
	s.Rolling7dSleep = last.Rolling7dSleep
	s.Rolling14dDebt = last.Rolling14dDebt
	s.CumulativeDebt = last.CumulativeDebt
	return s
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	nights, err := loadNights(cfg)
	if err != nil {
		return err
	}

	printSummary(summarize(nights), cfg.TargetSleep)
	return nil
}

func printSummary(s Summary, target float64) {
	fmt.Println()
	fmt.Printf("  sleepdebt Stats\n")
	fmt.Printf("  =====================\n")
	fmt.Println()

	if s.Nights == 0 {
		fmt.Printf("  No sleep-nights in the export.\n")
		fmt.Println()
		return
	}

	fmt.Printf("  Nights:            %d (%s to %s)\n", s.Nights, s.From.Format("2006-01-02"), s.To.Format("2006-01-02"))
	fmt.Printf("  Target:            %.1fh\n", target)
	fmt.Println()

	fmt.Printf("  Sleep\n")
	fmt.Printf("  -----\n")
	fmt.Printf("  Average:           %.1fh\n", s.AvgSleep)
	fmt.Printf("  7-day average:     %.1fh\n", s.Rolling7dSleep)
	fmt.Printf("  Below target:      %s\n", colorCount(s.BelowTarget, s.Nights))
	fmt.Println()

	fmt.Printf("  Debt\n")
	fmt.Printf("  ----\n")
	fmt.Printf("  14-day window:     %s\n", colorHours(s.Rolling14dDebt))
	fmt.Printf("  Cumulative:        %s\n", colorHours(s.CumulativeDebt))
	fmt.Println()
}

func colorCount(below, total int) string {
	text := fmt.Sprintf("%d of %d", below, total)
	if below > 0 {
		return badStyle.Render(text)
	}
	return goodStyle.Render(text)
}

func colorHours(debt float64) string {
	text := fmt.Sprintf("%.1fh", debt)
	if debt > 0 {
		return badStyle.Render(text)
	}
	return goodStyle.Render(text)
}
