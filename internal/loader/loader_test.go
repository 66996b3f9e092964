package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestFindDataFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "export.csv", "")
	writeFile(t, dir, "notes.txt", "")

	path, err := FindDataFile(dir, "csv")
	if err != nil {
		t.Fatalf("FindDataFile() error: %v", err)
	}
	if filepath.Base(path) != "export.csv" {
		t.Errorf("FindDataFile() = %s, want export.csv", path)
	}
}

func TestFindDataFileNone(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "")

	_, err := FindDataFile(dir, "csv")
	if !errors.Is(err, ErrNoDataFile) {
		t.Errorf("FindDataFile() error = %v, want ErrNoDataFile", err)
	}
}

func TestFindDataFileFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "")
	writeFile(t, dir, "a.csv", "")

	path, err := FindDataFile(dir, "csv")
	if err != nil {
		t.Fatalf("FindDataFile() error: %v", err)
	}
	if filepath.Base(path) != "a.csv" {
		t.Errorf("FindDataFile() = %s, want a.csv", path)
	}
}

func TestReadSessions(t *testing.T) {
	dir := t.TempDir()
	// Mixed timestamp precision: the export drops zero seconds.
	path := writeFile(t, dir, "export.csv", strings.Join([]string{
		"Start Time,Time Asleep(min),Efficiency",
		"2024-01-01 23:00:00,455,93",
		"2024-01-02 22:30,480,95",
		"2024-01-04T01:15:30,35,88",
	}, "\n")+"\n")

	records, err := ReadSessions(path)
	if err != nil {
		t.Fatalf("ReadSessions() error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if got := records[0].StartTime.Format("2006-01-02 15:04:05"); got != "2024-01-01 23:00:00" {
		t.Errorf("records[0].StartTime = %s", got)
	}
	if records[0].MinutesAsleep != 455 {
		t.Errorf("records[0].MinutesAsleep = %g, want 455", records[0].MinutesAsleep)
	}
	if got := records[1].StartTime.Format("2006-01-02 15:04:05"); got != "2024-01-02 22:30:00" {
		t.Errorf("records[1].StartTime = %s", got)
	}
	if got := records[2].StartTime.Format("2006-01-02 15:04:05"); got != "2024-01-04 01:15:30" {
		t.Errorf("records[2].StartTime = %s", got)
	}
}

func TestReadSessionsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantRow string
	}{
		{
			"bad timestamp",
			"Start Time,Time Asleep(min)\n2024-01-01 23:00:00,455\nnot-a-time,100\n",
			"row 2",
		},
		{
			"bad minutes",
			"Start Time,Time Asleep(min)\n2024-01-01 23:00:00,lots\n",
			"row 1",
		},
		{
			"negative minutes",
			"Start Time,Time Asleep(min)\n2024-01-01 23:00:00,-10\n",
			"row 1",
		},
		{
			"missing start column",
			"Bedtime,Time Asleep(min)\n2024-01-01 23:00:00,455\n",
			"Start Time",
		},
		{
			"missing minutes column",
			"Start Time,Duration\n2024-01-01 23:00:00,455\n",
			"Time Asleep(min)",
		},
		{
			"empty file",
			"",
			"header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "export.csv", tt.content)

			_, err := ReadSessions(path)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("ReadSessions() error = %v, want ErrMalformedInput", err)
			}
			if !strings.Contains(err.Error(), tt.wantRow) {
				t.Errorf("error %q does not mention %q", err, tt.wantRow)
			}
		})
	}
}
