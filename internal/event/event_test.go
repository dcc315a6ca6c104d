package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Char('q'), "q"},
		{AltChar('l'), "alt+l"},
		{Key{Rune: 'c', Ctrl: true}, "ctrl+c"},
		{Key{Rune: 'x', Ctrl: true, Alt: true}, "ctrl+alt+x"},
		{Key{Name: "esc"}, "esc"},
		{Key{Name: "up", Alt: true}, "alt+up"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestConstructors(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tick := Tick(at)
	assert.Equal(t, KindTick, tick.Kind)
	assert.Equal(t, at, tick.At)
	assert.Equal(t, Key{}, tick.Key)

	press := KeyPress(AltChar('l'), at)
	assert.Equal(t, KindKey, press.Kind)
	assert.Equal(t, AltChar('l'), press.Key)

	assert.Equal(t, "tick", KindTick.String())
	assert.Equal(t, "key", KindKey.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
