package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/sleepdebt/internal/config"
	"github.com/emiliopalmerini/sleepdebt/internal/web"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Serve the sleep debt chart",
	Long: `Load the export from the working directory and serve the chart.

Examples:
  sleepdebt chart               # Serve on the configured port and open a browser
  sleepdebt chart --no-browser  # Serve only; open the printed URL yourself`,
	RunE: runChart,
}

var chartNoBrowser bool

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().BoolVar(&chartNoBrowser, "no-browser", false, "Do not open the chart in a browser")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	nights, err := loadNights(cfg)
	if err != nil {
		return err
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	server := web.NewServer(nights, cfg.TargetSleep, cfg.Port)

	if !chartNoBrowser {
		go func() {
			// Give ListenAndServe a moment before pointing a browser at it.
			time.Sleep(300 * time.Millisecond)
			if err := browser.OpenURL(server.URL()); err != nil {
				fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
			}
		}()
	}

	return server.Start(ctx)
}
