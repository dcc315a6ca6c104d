package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskel/sysmon/internal/engine"
	"github.com/haskel/sysmon/internal/event"
	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/monitor/monitortest"
)

func newTestModel(t *testing.T, src *monitortest.Source) (Model, chan event.Key, chan event.Event) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collector := monitor.NewCollector(src, monitor.CollectorConfig{ScanRate: 4}, logger)
	eng := engine.New(engine.Config{LogDir: t.TempDir(), TickRate: 250 * time.Millisecond}, collector, logger)
	t.Cleanup(func() { _ = eng.Close() })

	keyFeed := make(chan event.Key, keyBuffer)
	events := make(chan event.Event, 8)
	return NewModel(eng, keyFeed, events), keyFeed, events
}

func sampleSource() *monitortest.Source {
	return &monitortest.Source{
		Cores: []float64{10, 20, 30, 40},
		RAM:   monitor.ByteUsage{Used: 4 << 30, Total: 16 << 30},
		Procs: []monitor.ProcessStat{
			monitortest.Proc(100, "compiler", 80, 100<<20),
			monitortest.Proc(200, "database", 10, 900<<20),
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want event.Key
		ok   bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}, event.Char('c'), true},
		{"bracket", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}}, event.Char('['), true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}, Alt: true}, event.AltChar('l'), true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, event.Char(' '), true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, event.Key{Name: "esc"}, true},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, event.Key{Name: "up"}, true},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlL}, event.Key{Name: "l", Ctrl: true}, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Paste: true}, event.Key{}, false},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ql")}, event.Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromTea(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdate_ForwardsKeysToSource(t *testing.T) {
	m, keyFeed, _ := newTestModel(t, sampleSource())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	assert.Nil(t, cmd)

	select {
	case k := <-keyFeed:
		assert.Equal(t, event.Char('m'), k)
	default:
		t.Fatal("key was not forwarded")
	}

	// The engine only changes once the event comes back from the source.
	assert.Equal(t, engine.SortByCPU, m.State().SortOrder)
}

func TestUpdate_DropsKeysWhenFeedFull(t *testing.T) {
	m, keyFeed, _ := newTestModel(t, sampleSource())

	for i := 0; i < keyBuffer+4; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	}
	assert.Len(t, keyFeed, keyBuffer)
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m, keyFeed, _ := newTestModel(t, sampleSource())

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Empty(t, keyFeed)
}

func TestUpdate_AppliesEvents(t *testing.T) {
	m, _, events := newTestModel(t, sampleSource())

	m, cmd := update(t, m, eventMsg(event.Tick(time.Now())))
	require.NotNil(t, cmd)
	assert.Len(t, m.State().Snapshot.CPU, 4)

	events <- event.KeyPress(event.Char('m'), time.Now())
	msg := cmd()
	m, _ = update(t, m, msg)
	assert.Equal(t, engine.SortByMem, m.State().SortOrder)
	assert.Equal(t, int32(200), m.State().Processes[0].PID)
}

func TestUpdate_QuitEvent(t *testing.T) {
	m, _, _ := newTestModel(t, sampleSource())

	_, cmd := update(t, m, eventMsg(event.KeyPress(event.Char('q'), time.Now())))
	assert.True(t, isQuit(cmd))
}

func TestUpdate_EventsClosed(t *testing.T) {
	m, _, events := newTestModel(t, sampleSource())
	close(events)

	msg := m.Init()()
	assert.IsType(t, eventsClosedMsg{}, msg)

	_, cmd := update(t, m, msg)
	assert.True(t, isQuit(cmd))
}
