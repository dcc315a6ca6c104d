package event

import (
	"context"
	"log/slog"
	"time"
)

// DefaultTickRate is the sampling cadence of the dashboard.
const DefaultTickRate = 250 * time.Millisecond

// Source merges a periodic tick with key presses into one ordered stream.
// Each iteration waits up to the tick rate for a key: a key is emitted as
// soon as it arrives, a timeout produces a tick. Key presses therefore reset
// the tick timer, trading regular tick spacing for immediate input handling.
type Source struct {
	tickRate time.Duration
	keys     <-chan Key
	logger   *slog.Logger
	now      func() time.Time
}

// NewSource creates a Source reading key presses from keys. A nil keys
// channel yields a tick-only stream.
func NewSource(tickRate time.Duration, keys <-chan Key, logger *slog.Logger) *Source {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Source{
		tickRate: tickRate,
		keys:     keys,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Source) TickRate() time.Duration {
	return s.tickRate
}

// Run starts the producer goroutine. The returned channel is closed once ctx
// is cancelled.
func (s *Source) Run(ctx context.Context) <-chan Event {
	out := make(chan Event, 16)
	go s.loop(ctx, out)
	return out
}

func (s *Source) loop(ctx context.Context, out chan<- Event) {
	defer close(out)

	keys := s.keys
	timer := time.NewTimer(s.tickRate)
	defer timer.Stop()

	for {
		var ev Event
		select {
		case <-ctx.Done():
			return
		case k, ok := <-keys:
			if !ok {
				// Input is gone; keep ticking without it.
				s.logger.Debug("key feed closed, continuing with ticks only")
				keys = nil
				continue
			}
			ev = KeyPress(k, s.now())
		case <-timer.C:
			ev = Tick(s.now())
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}

		resetTimer(timer, s.tickRate)
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
