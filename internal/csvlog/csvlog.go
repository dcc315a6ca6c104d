// Package csvlog writes process tables as CSV, either as a one-shot
// snapshot file or as a continuously appended recording.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/haskel/sysmon/internal/monitor"
)

const (
	// TimestampLayout is ISO-8601 local time with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000"
	// FileTimeLayout is embedded in generated file names.
	FileTimeLayout = "2006-01-02_15-04-05"

	snapshotPrefix = "snap"
	recordPrefix   = "sysmon"
)

var Header = []string{"timestamp", "pid", "name", "cpu_percent", "mem_bytes"}

var ErrNoLogDir = errors.New("log directory not configured")

// SnapshotName returns the file name of a one-shot snapshot taken at t.
func SnapshotName(t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", snapshotPrefix, t.Format(FileTimeLayout))
}

// RecordName returns the file name of a continuous log started at t.
func RecordName(t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", recordPrefix, t.Format(FileTimeLayout))
}

// Row formats one process as a CSV record.
func Row(ts time.Time, p monitor.ProcessInfo) []string {
	return []string{
		ts.Format(TimestampLayout),
		strconv.FormatInt(int64(p.PID), 10),
		p.Name,
		strconv.FormatFloat(p.CPUPercent, 'f', 1, 64),
		strconv.FormatUint(p.MemBytes, 10),
	}
}

// WriteSnapshot writes a header plus one row per process into a new file in
// dir, creating dir if needed, and returns the file path.
func WriteSnapshot(dir string, now time.Time, procs []monitor.ProcessInfo) (string, error) {
	f, path, err := create(dir, SnapshotName(now))
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	_ = w.Write(Header)
	for _, p := range procs {
		_ = w.Write(Row(now, p))
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot: %w", err)
	}
	return path, nil
}

func create(dir, name string) (*os.File, string, error) {
	if dir == "" {
		return nil, "", ErrNoLogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	return f, path, nil
}
