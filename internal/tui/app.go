package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haskel/sysmon/internal/engine"
	"github.com/haskel/sysmon/internal/event"
)

// Run starts the dashboard and blocks until the user quits. The caller owns
// eng and is responsible for closing it afterwards.
func Run(ctx context.Context, eng *engine.Engine, tickRate time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyFeed := make(chan event.Key, keyBuffer)
	events := event.NewSource(tickRate, keyFeed, logger).Run(ctx)

	p := tea.NewProgram(
		NewModel(eng, keyFeed, events),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
