package csvlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/haskel/sysmon/internal/monitor"
)

// Recorder is an open continuous log. Every Append is flushed to the file
// before it returns.
type Recorder struct {
	file *os.File
	w    *csv.Writer
	path string
	rows int
}

// StartRecorder creates a new log file in dir and writes the header row.
func StartRecorder(dir string, now time.Time) (*Recorder, error) {
	f, path, err := create(dir, RecordName(now))
	if err != nil {
		return nil, err
	}

	r := &Recorder{file: f, w: csv.NewWriter(f), path: path}
	if err := r.write(Header); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) Path() string { return r.path }

// Rows returns the number of data rows appended so far.
func (r *Recorder) Rows() int { return r.rows }

// Append writes one row per process stamped with ts.
func (r *Recorder) Append(ts time.Time, procs []monitor.ProcessInfo) error {
	for _, p := range procs {
		if err := r.w.Write(Row(ts, p)); err != nil {
			return fmt.Errorf("failed to append to %s: %w", r.path, err)
		}
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", r.path, err)
	}
	r.rows += len(procs)
	return nil
}

func (r *Recorder) write(record []string) error {
	_ = r.w.Write(record)
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (r *Recorder) Close() error {
	r.w.Flush()
	flushErr := r.w.Error()
	if err := r.file.Close(); err != nil {
		return err
	}
	return flushErr
}
