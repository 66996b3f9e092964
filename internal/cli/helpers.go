package cli

import (
	"fmt"

	"github.com/emiliopalmerini/sleepdebt/internal/config"
	"github.com/emiliopalmerini/sleepdebt/internal/loader"
	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

// loadNights runs the batch pipeline: discover the export, parse it,
// augment it. Every command starts here.
func loadNights(cfg *config.Config) ([]sleep.Night, error) {
	path, err := loader.FindDataFile(cfg.DataDir, cfg.DataExt)
	if err != nil {
		return nil, err
	}

	records, err := loader.ReadSessions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	nights, err := sleep.Augment(records, cfg.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to augment %s: %w", path, err)
	}
	return nights, nil
}
