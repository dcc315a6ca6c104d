package engine

import (
	"context"

	"github.com/haskel/sysmon/internal/event"
)

// Loop consumes events until the quit key, closure of events, or ctx
// cancellation, calling render after every handled event.
func Loop(ctx context.Context, e *Engine, events <-chan event.Event, render func(State)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit := e.Handle(ev)
			if render != nil {
				render(e.State())
			}
			if quit {
				return nil
			}
		}
	}
}
