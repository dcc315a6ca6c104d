package engine

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskel/sysmon/internal/csvlog"
	"github.com/haskel/sysmon/internal/event"
	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/monitor/monitortest"
)

const gib = 1 << 30

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, logDir string) (*Engine, *monitortest.Source) {
	t.Helper()
	src := &monitortest.Source{
		Cores:   []float64{10, 20, 30, 40},
		RAM:     monitor.ByteUsage{Used: 4 * gib, Total: 16 * gib},
		Network: monitor.NetworkTotals{Received: 100, Transmitted: 10},
		Procs: []monitor.ProcessStat{
			monitortest.Proc(100, "compiler", 80, 100<<20),
			monitortest.Proc(200, "database", 10, 900<<20),
		},
	}
	collector := monitor.NewCollector(src, monitor.CollectorConfig{ScanRate: 4}, testLogger())
	e := New(Config{LogDir: logDir, HistoryCapacity: 120, TickRate: 250 * time.Millisecond}, collector, testLogger())

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	e.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	t.Cleanup(func() { _ = e.Close() })
	return e, src
}

func tick(e *Engine) bool { return e.Handle(event.Tick(time.Now())) }

func press(e *Engine, k event.Key) bool { return e.Handle(event.KeyPress(k, time.Now())) }

func pids(procs []monitor.ProcessInfo) []int32 {
	out := make([]int32, len(procs))
	for i, p := range procs {
		out[i] = p.PID
	}
	return out
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestNew_Defaults(t *testing.T) {
	collector := monitor.NewCollector(&monitortest.Source{}, monitor.CollectorConfig{}, testLogger())
	e := New(Config{}, collector, testLogger())

	st := e.State()
	assert.Equal(t, DefaultLogDir, st.LogDir)
	assert.Equal(t, event.DefaultTickRate, st.TickRate)
	assert.Equal(t, SortByCPU, st.SortOrder)
	assert.Equal(t, monitor.DefaultScanRate, st.ScanRate)
	assert.Empty(t, st.Snapshot.Processes)
	assert.Empty(t, st.History.NetRx)
	assert.Equal(t, time.Second, st.ScanInterval())
}

func TestTick_RefreshesSnapshotAndHistory(t *testing.T) {
	e, src := newTestEngine(t, t.TempDir())

	assert.False(t, tick(e))
	src.Network = monitor.NetworkTotals{Received: 300, Transmitted: 30}
	assert.False(t, tick(e))

	st := e.State()
	assert.Len(t, st.Snapshot.CPU, 4)
	assert.Equal(t, monitor.ByteUsage{Used: 4 * gib, Total: 16 * gib}, st.Snapshot.RAM)
	assert.Equal(t, []uint64{100, 300}, st.History.NetRx)
	assert.Equal(t, []uint64{10, 30}, st.History.NetTx)
	assert.Len(t, st.History.DiskRead, 2)
	assert.Len(t, st.History.DiskWrite, 2)
}

func TestSortOrder_ReversesWhenMemoryInverted(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)

	assert.Equal(t, []int32{100, 200}, pids(e.State().Processes))

	press(e, event.Char('m'))
	st := e.State()
	assert.Equal(t, SortByMem, st.SortOrder)
	assert.Equal(t, []int32{200, 100}, pids(st.Processes))

	press(e, event.Char('C'))
	st = e.State()
	assert.Equal(t, SortByCPU, st.SortOrder)
	assert.Equal(t, []int32{100, 200}, pids(st.Processes))

	press(e, event.Char('M'))
	assert.Equal(t, SortByMem, e.State().SortOrder)
	press(e, event.Char('c'))
	assert.Equal(t, SortByCPU, e.State().SortOrder)
}

func TestSortOrder_DoesNotReorderSnapshot(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)
	press(e, event.Char('m'))

	assert.Equal(t, []int32{100, 200}, pids(e.Snapshot().Processes))
}

func TestSnapshot_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	e, _ := newTestEngine(t, dir)
	tick(e)

	press(e, event.Char('l'))

	st := e.State()
	require.NotEmpty(t, st.SnapshotPath)
	assert.Equal(t, dir, filepath.Dir(st.SnapshotPath))
	assert.Regexp(t, `^snap-\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.csv$`, filepath.Base(st.SnapshotPath))

	records := readCSV(t, st.SnapshotPath)
	require.Len(t, records, 3)
	assert.Equal(t, csvlog.Header, records[0])
	assert.Equal(t, "100", records[1][1])
	assert.Equal(t, "compiler", records[1][2])
	assert.Equal(t, "80.0", records[1][3])
	assert.Equal(t, "104857600", records[1][4])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}$`, records[1][0])
}

func TestSnapshot_UppercaseKey(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)

	press(e, event.Char('L'))
	assert.NotEmpty(t, e.State().SnapshotPath)
	assert.False(t, e.State().Recording())
}

func TestSnapshot_PathClearedOnTwelfthTick(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)
	press(e, event.Char('l'))
	path := e.State().SnapshotPath
	require.NotEmpty(t, path)

	for i := 1; i < SnapshotDisplayTicks; i++ {
		tick(e)
		assert.Equal(t, path, e.State().SnapshotPath, "tick %d", i)
	}

	tick(e)
	assert.Empty(t, e.State().SnapshotPath)
}

func TestSnapshot_NewSnapshotRestartsCountdown(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)
	press(e, event.Char('l'))

	for i := 0; i < 10; i++ {
		tick(e)
	}
	press(e, event.Char('l'))
	second := e.State().SnapshotPath

	for i := 1; i < SnapshotDisplayTicks; i++ {
		tick(e)
	}
	assert.Equal(t, second, e.State().SnapshotPath)
	tick(e)
	assert.Empty(t, e.State().SnapshotPath)
}

func TestSnapshot_FailureIsSilent(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	e, _ := newTestEngine(t, filepath.Join(blocker, "logs"))
	tick(e)

	assert.False(t, press(e, event.Char('l')))
	assert.Empty(t, e.State().SnapshotPath)

	// Ticks keep working afterwards.
	assert.False(t, tick(e))
}

func TestLogToggle_PairReturnsToInactive(t *testing.T) {
	dir := t.TempDir()
	e, _ := newTestEngine(t, dir)
	tick(e)

	press(e, event.AltChar('l'))
	st := e.State()
	require.True(t, st.Recording())
	path := st.LogPath
	assert.Regexp(t, `^sysmon-.*\.csv$`, filepath.Base(path))

	tick(e)
	tick(e)
	tick(e)

	press(e, event.AltChar('l'))
	st = e.State()
	assert.False(t, st.Recording())
	assert.Empty(t, st.LogPath)

	records := readCSV(t, path)
	require.Len(t, records, 1+3*2)
	assert.Equal(t, csvlog.Header, records[0])

	// Ticks after stopping do not touch the file.
	tick(e)
	assert.Len(t, readCSV(t, path), 7)
}

func TestLogToggle_RowsFlushedEveryTick(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	tick(e)
	press(e, event.AltChar('l'))
	path := e.State().LogPath

	tick(e)
	assert.Len(t, readCSV(t, path), 3)
	tick(e)
	assert.Len(t, readCSV(t, path), 5)
}

func TestLogToggle_FailureKeepsInactive(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	e, _ := newTestEngine(t, blocker)
	press(e, event.AltChar('l'))

	assert.False(t, e.State().Recording())
	assert.False(t, tick(e))
}

func TestLogToggle_CloseFlushesOnQuit(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	assert.True(t, e.StartLog())
	assert.True(t, e.StartLog())
	path := e.State().LogPath

	tick(e)
	assert.True(t, press(e, event.Char('q')))
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	assert.Len(t, readCSV(t, path), 3)
}

func TestScanRateKeys(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())
	assert.Equal(t, monitor.ScanRate(4), e.State().ScanRate)

	steps := []struct {
		key  rune
		want monitor.ScanRate
	}{
		{'[', 2},
		{'[', 1},
		{'[', 1},
		{']', 2},
		{']', 4},
		{']', 8},
		{']', 20},
		{']', 20},
		{'[', 8},
	}
	for _, s := range steps {
		press(e, event.Char(s.key))
		assert.Equal(t, s.want, e.State().ScanRate, "after %q", s.key)
	}
	assert.Equal(t, 2*time.Second, e.State().ScanInterval())
}

func TestScanRateAffectsCollection(t *testing.T) {
	e, src := newTestEngine(t, t.TempDir())

	press(e, event.Char('['))
	press(e, event.Char('['))
	for i := 0; i < 4; i++ {
		tick(e)
	}
	assert.Equal(t, 4, src.ProcessCalls)
}

func TestQuit_StopsAcceptingEvents(t *testing.T) {
	e, src := newTestEngine(t, t.TempDir())
	tick(e)

	assert.True(t, press(e, event.Char('q')))
	assert.True(t, e.Stopped())

	calls := src.CPUCalls
	assert.True(t, tick(e))
	assert.True(t, press(e, event.Char('m')))
	assert.Equal(t, calls, src.CPUCalls)
	assert.Equal(t, SortByCPU, e.State().SortOrder)
}

func TestUnknownKeysIgnored(t *testing.T) {
	e, src := newTestEngine(t, t.TempDir())
	tick(e)
	before := e.State()

	for _, k := range []event.Key{
		event.Char('x'),
		event.Char('Q'),
		{Name: "esc"},
		{Name: "up"},
		{Rune: 'c', Ctrl: true},
		event.AltChar('L'),
	} {
		assert.False(t, press(e, k), "key %s", k)
	}

	after := e.State()
	assert.Equal(t, before.SortOrder, after.SortOrder)
	assert.Equal(t, before.ScanRate, after.ScanRate)
	assert.Empty(t, after.SnapshotPath)
	assert.False(t, after.Recording())
	assert.Equal(t, 1, src.CPUCalls)
}

func TestLoop_RendersEveryEvent(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())

	events := make(chan event.Event, 4)
	events <- event.Tick(time.Now())
	events <- event.KeyPress(event.Char('m'), time.Now())
	events <- event.Tick(time.Now())
	events <- event.KeyPress(event.Char('q'), time.Now())

	var states []State
	err := Loop(context.Background(), e, events, func(s State) { states = append(states, s) })
	require.NoError(t, err)

	require.Len(t, states, 4)
	assert.Equal(t, SortByCPU, states[0].SortOrder)
	assert.Equal(t, SortByMem, states[1].SortOrder)
	assert.Len(t, states[2].History.NetRx, 2)
}

func TestLoop_ReturnsOnChannelClose(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())

	events := make(chan event.Event, 1)
	events <- event.Tick(time.Now())
	close(events)

	renders := 0
	err := Loop(context.Background(), e, events, func(State) { renders++ })
	require.NoError(t, err)
	assert.Equal(t, 1, renders)
}

func TestLoop_ReturnsOnCancel(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Loop(ctx, e, make(chan event.Event), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoop_WithSource(t *testing.T) {
	e, _ := newTestEngine(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan event.Key, 1)
	src := event.NewSource(5*time.Millisecond, keys, testLogger())
	events := src.Run(ctx)

	ticks := 0
	err := Loop(ctx, e, events, func(s State) {
		ticks = len(s.History.NetRx)
		if ticks == 3 {
			keys <- event.Char('q')
		}
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ticks, 3)
	assert.True(t, e.Stopped())
}
