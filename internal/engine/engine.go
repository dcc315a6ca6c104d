// Package engine holds the dashboard state machine. It consumes tick and key
// events one at a time, refreshes metrics on ticks, and exposes a read-only
// State for rendering.
package engine

import (
	"log/slog"
	"slices"
	"time"

	"github.com/haskel/sysmon/internal/csvlog"
	"github.com/haskel/sysmon/internal/event"
	"github.com/haskel/sysmon/internal/monitor"
)

// SnapshotDisplayTicks is how many ticks the last snapshot path stays
// visible. At the default 250ms tick this is about three seconds.
const SnapshotDisplayTicks = 12

// DefaultLogDir is used when no log directory is configured.
const DefaultLogDir = "/tmp/sysmon-tui"

type Config struct {
	LogDir          string
	HistoryCapacity int
	TickRate        time.Duration
}

// Engine owns all mutable dashboard state. It is not safe for concurrent
// use: a single consumer goroutine must call Handle, State and Close.
type Engine struct {
	cfg       Config
	collector *monitor.Collector
	history   *monitor.History
	logger    *slog.Logger
	now       func() time.Time

	snapshot  monitor.Snapshot
	sortOrder SortOrder

	snapPath string
	snapTTL  int

	recorder *csvlog.Recorder

	stopped bool
}

func New(cfg Config, collector *monitor.Collector, logger *slog.Logger) *Engine {
	if cfg.LogDir == "" {
		cfg.LogDir = DefaultLogDir
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = event.DefaultTickRate
	}
	return &Engine{
		cfg:       cfg,
		collector: collector,
		history:   monitor.NewHistory(cfg.HistoryCapacity),
		logger:    logger,
		now:       time.Now,
		sortOrder: SortByCPU,
	}
}

// Handle applies one event. It returns true once the engine has received
// the quit key; every later event is ignored.
func (e *Engine) Handle(ev event.Event) bool {
	if e.stopped {
		return true
	}

	switch ev.Kind {
	case event.KindTick:
		e.tick()
	case event.KindKey:
		return e.handleKey(ev.Key)
	}
	return false
}

// Stopped reports whether the quit key has been handled.
func (e *Engine) Stopped() bool {
	return e.stopped
}

func (e *Engine) tick() {
	e.snapshot = e.collector.Collect()
	e.history.Push(
		e.snapshot.Network.Received,
		e.snapshot.Network.Transmitted,
		e.snapshot.DiskIO.Read,
		e.snapshot.DiskIO.Write,
	)

	if e.snapTTL > 0 {
		e.snapTTL--
		if e.snapTTL == 0 {
			e.snapPath = ""
		}
	}

	e.appendLog()
}

// Snapshot returns a copy of the most recent collection.
func (e *Engine) Snapshot() monitor.Snapshot {
	return e.snapshot.Clone()
}

// State is the read-only projection handed to the renderer.
type State struct {
	Snapshot     monitor.Snapshot
	Processes    []monitor.ProcessInfo
	History      monitor.HistorySeries
	SortOrder    SortOrder
	ScanRate     monitor.ScanRate
	TickRate     time.Duration
	SnapshotPath string
	LogPath      string
	LogDir       string
}

// ScanInterval is the wall time between expensive refreshes.
func (s State) ScanInterval() time.Duration {
	return time.Duration(s.ScanRate) * s.TickRate
}

// Recording reports whether continuous logging is active.
func (s State) Recording() bool {
	return s.LogPath != ""
}

func (e *Engine) State() State {
	snap := e.snapshot.Clone()
	return State{
		Snapshot:     snap,
		Processes:    e.sortedProcesses(snap.Processes),
		History:      e.history.Series(),
		SortOrder:    e.sortOrder,
		ScanRate:     e.collector.ScanRate(),
		TickRate:     e.cfg.TickRate,
		SnapshotPath: e.snapPath,
		LogPath:      e.logPath(),
		LogDir:       e.cfg.LogDir,
	}
}

func (e *Engine) sortedProcesses(procs []monitor.ProcessInfo) []monitor.ProcessInfo {
	sorted := slices.Clone(procs)
	switch e.sortOrder {
	case SortByMem:
		monitor.SortByMemory(sorted)
	default:
		monitor.SortByCPU(sorted)
	}
	return sorted
}

func (e *Engine) logPath() string {
	if e.recorder == nil {
		return ""
	}
	return e.recorder.Path()
}

// Close stops continuous logging, flushing any buffered rows. It is safe to
// call more than once.
func (e *Engine) Close() error {
	if e.recorder == nil {
		return nil
	}
	err := e.recorder.Close()
	e.recorder = nil
	return err
}
