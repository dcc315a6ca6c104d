package event

import (
	"fmt"
	"time"
)

type Kind int

const (
	KindTick Kind = iota
	KindKey
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindKey:
		return "key"
	default:
		return "unknown"
	}
}

// Key is a single key press. Rune is 0 for non-character keys, which are
// identified by Name instead (for example "esc" or "up").
type Key struct {
	Rune rune
	Name string
	Alt  bool
	Ctrl bool
}

// Char builds a plain character key.
func Char(r rune) Key { return Key{Rune: r} }

// AltChar builds an Alt-modified character key.
func AltChar(r rune) Key { return Key{Rune: r, Alt: true} }

func (k Key) String() string {
	name := k.Name
	if k.Rune != 0 {
		name = string(k.Rune)
	}
	switch {
	case k.Ctrl && k.Alt:
		return fmt.Sprintf("ctrl+alt+%s", name)
	case k.Ctrl:
		return "ctrl+" + name
	case k.Alt:
		return "alt+" + name
	default:
		return name
	}
}

type Event struct {
	Kind Kind
	Key  Key
	At   time.Time
}

func Tick(at time.Time) Event {
	return Event{Kind: KindTick, At: at}
}

func KeyPress(k Key, at time.Time) Event {
	return Event{Kind: KindKey, Key: k, At: at}
}
