package sleep

import "time"

// Status marks whether a night met the sleep target.
type Status string

const (
	StatusBelowTarget     Status = "below-target"
	StatusAtOrAboveTarget Status = "at-or-above-target"
)

// SessionRecord is one recorded sleep session from the tracker export.
// Naps count as sessions too; several sessions can belong to one night.
type SessionRecord struct {
	StartTime     time.Time
	MinutesAsleep float64
}

// Night is one sleep-night with its derived metrics. Dates are stored
// at midnight UTC and carry date-only meaning.
type Night struct {
	Date           time.Time
	SleepHours     float64
	SleepDelta     float64
	CumulativeDebt float64
	Rolling14dDebt float64
	Rolling7dSleep float64
	Status         Status
}
