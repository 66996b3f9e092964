package sleep

import (
	"fmt"
	"sort"
	"time"
)

// Rolling window sizes, in nights. Windows run over the sequence of
// recorded nights, not calendar days: a gap in the data shrinks the
// time span a window covers rather than contributing zeros.
const (
	debtWindowNights  = 14
	sleepWindowNights = 7
)

// Options holds the two constants the augmentation depends on.
type Options struct {
	// TargetSleep is the nightly sleep goal in hours.
	TargetSleep float64
	// CutoffHour is the hour of day below which a session is attributed
	// to the previous evening's night.
	CutoffHour int
}

// Augment turns raw sleep sessions into one Night per sleep-night with
// derived metrics: nightly hours, delta against the target, cumulative
// and rolling debt, a rolling sleep average, and a target status.
//
// Output is sorted by ascending date with exactly one row per distinct
// date. The result is a pure function of the input and Options; running
// it twice on the same input yields identical output.
func Augment(records []SessionRecord, opts Options) ([]Night, error) {
	if err := ValidateCutoffHour(opts.CutoffHour); err != nil {
		return nil, err
	}

	// Sum all sessions per night so naps are included.
	totals := make(map[time.Time]float64, len(records))
	for i, r := range records {
		if r.MinutesAsleep < 0 {
			return nil, fmt.Errorf("record %d: minutes asleep is negative (%g)", i+1, r.MinutesAsleep)
		}
		day := AssignSleepDay(r.StartTime, opts.CutoffHour)
		totals[day] += r.MinutesAsleep / 60
	}

	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	nights := make([]Night, len(dates))
	var debt float64
	for i, d := range dates {
		hours := totals[d]
		delta := hours - opts.TargetSleep
		debt -= delta

		n := Night{
			Date:           d,
			SleepHours:     hours,
			SleepDelta:     delta,
			CumulativeDebt: debt,
			Status:         StatusAtOrAboveTarget,
		}
		if hours < opts.TargetSleep {
			n.Status = StatusBelowTarget
		}
		nights[i] = n
	}

	// Data volumes are tiny (one row per night), so the rolling metrics
	// just recompute their window per row.
	for i := range nights {
		nights[i].Rolling14dDebt = rollingDebt(nights, i)
		nights[i].Rolling7dSleep = rollingSleep(nights, i)
	}

	return nights, nil
}

// rollingDebt sums -SleepDelta over the trailing debt window ending at i,
// using however many nights exist when history is shorter than the window.
func rollingDebt(nights []Night, i int) float64 {
	var sum float64
	for j := windowStart(i, debtWindowNights); j <= i; j++ {
		sum -= nights[j].SleepDelta
	}
	return sum
}

// rollingSleep averages SleepHours over the trailing sleep window ending
// at i, same partial-window rule as rollingDebt.
func rollingSleep(nights []Night, i int) float64 {
	start := windowStart(i, sleepWindowNights)
	var sum float64
	for j := start; j <= i; j++ {
		sum += nights[j].SleepHours
	}
	return sum / float64(i-start+1)
}

func windowStart(i, size int) int {
	if i-size+1 < 0 {
		return 0
	}
	return i - size + 1
}
