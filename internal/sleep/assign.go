package sleep

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCutoffHour is returned when the cutoff hour falls outside [0, 23].
var ErrInvalidCutoffHour = errors.New("cutoff hour must be between 0 and 23")

// ValidateCutoffHour checks that h is a valid hour of day.
func ValidateCutoffHour(h int) error {
	if h < 0 || h > 23 {
		return fmt.Errorf("%w: got %d", ErrInvalidCutoffHour, h)
	}
	return nil
}

// AssignSleepDay maps a session start time to the sleep-night it belongs to.
// A session starting after midnight but before cutoffHour counts toward the
// previous evening's night; a session starting at exactly cutoffHour does not.
func AssignSleepDay(t time.Time, cutoffHour int) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if t.Hour() < cutoffHour {
		return day.AddDate(0, 0, -1)
	}
	return day
}
