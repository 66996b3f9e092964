package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sleepdebt",
	Short: "Sleep debt analytics from nightly tracker exports",
	Long: `sleepdebt turns a sleep tracker's CSV export into nightly statistics.

Drop the export in the working directory and run a command: sessions are
merged into sleep-nights (post-midnight bedtimes count toward the previous
evening), then each night gets its delta against the target, a cumulative
debt, and 7/14-night rolling figures.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
