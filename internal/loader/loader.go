// Package loader discovers the tracker export in a directory and parses
// it into raw sleep sessions.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

var (
	// ErrNoDataFile is returned when no file with the expected extension
	// exists in the data directory.
	ErrNoDataFile = errors.New("no data file found")
	// ErrMalformedInput is returned when a row of the export cannot be
	// parsed. The whole load fails; no partial results are produced.
	ErrMalformedInput = errors.New("malformed input")
)

// Column headers as written by the sleep tracker export.
const (
	colStartTime     = "Start Time"
	colMinutesAsleep = "Time Asleep(min)"
)

// The export drops the seconds component when it is zero, so both
// layouts (and their ISO "T" variants) are accepted.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FindDataFile returns the first file in dir matching *.ext. When several
// match, the first in lexical order wins; callers are expected to keep a
// single export in the directory.
func FindDataFile(dir, ext string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*."+ext))
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: *.%s in %s", ErrNoDataFile, ext, dir)
	}
	return matches[0], nil
}

// ReadSessions parses a tracker export into raw session records. The file
// must carry a header row naming the start-time and minutes-asleep
// columns; extra columns are ignored.
func ReadSessions(path string) ([]sleep.SessionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row: %v", ErrMalformedInput, err)
	}

	startIdx, minutesIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colStartTime:
			startIdx = i
		case colMinutesAsleep:
			minutesIdx = i
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, colStartTime)
	}
	if minutesIdx < 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrMalformedInput, colMinutesAsleep)
	}

	var records []sleep.SessionRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, row, err)
		}
		if startIdx >= len(fields) || minutesIdx >= len(fields) {
			return nil, fmt.Errorf("%w: row %d: too few columns", ErrMalformedInput, row)
		}

		start, err := parseStartTime(fields[startIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, row, err)
		}
		minutes, err := strconv.ParseFloat(strings.TrimSpace(fields[minutesIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid minutes asleep %q", ErrMalformedInput, row, fields[minutesIdx])
		}
		if minutes < 0 {
			return nil, fmt.Errorf("%w: row %d: negative minutes asleep (%g)", ErrMalformedInput, row, minutes)
		}

		records = append(records, sleep.SessionRecord{
			StartTime:     start,
			MinutesAsleep: minutes,
		})
	}

	return records, nil
}

func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}
