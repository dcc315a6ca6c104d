package engine

import (
	"github.com/haskel/sysmon/internal/csvlog"
)

// takeSnapshot dumps the current process table. Failures leave the previous
// snapshot display untouched.
func (e *Engine) takeSnapshot() {
	path, err := csvlog.WriteSnapshot(e.cfg.LogDir, e.now(), e.snapshot.Processes)
	if err != nil {
		e.logger.Warn("snapshot skipped", "dir", e.cfg.LogDir, "error", err)
		return
	}

	e.snapPath = path
	e.snapTTL = SnapshotDisplayTicks
	e.logger.Info("snapshot written", "path", path, "processes", len(e.snapshot.Processes))
}

// toggleLog starts continuous logging, or stops it if already running.
func (e *Engine) toggleLog() {
	if e.recorder != nil {
		path := e.recorder.Path()
		rows := e.recorder.Rows()
		if err := e.Close(); err != nil {
			e.logger.Warn("closing continuous log failed", "path", path, "error", err)
		}
		e.logger.Info("continuous log stopped", "path", path, "rows", rows)
		return
	}

	rec, err := csvlog.StartRecorder(e.cfg.LogDir, e.now())
	if err != nil {
		e.logger.Warn("continuous log not started", "dir", e.cfg.LogDir, "error", err)
		return
	}
	e.recorder = rec
	e.logger.Info("continuous log started", "path", rec.Path())
}

// StartLog begins continuous logging unless it is already active.
func (e *Engine) StartLog() bool {
	if e.recorder == nil {
		e.toggleLog()
	}
	return e.recorder != nil
}

func (e *Engine) appendLog() {
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Append(e.now(), e.snapshot.Processes); err != nil {
		e.logger.Warn("continuous log write failed", "path", e.recorder.Path(), "error", err)
	}
}
