package engine

import (
	"github.com/haskel/sysmon/internal/event"
)

// Key bindings.
const (
	KeySortCPU    = 'c'
	KeySortCPUAlt = 'C'
	KeySortMem    = 'm'
	KeySortMemAlt = 'M'
	KeySnapshot   = 'l'
	KeySnapAlt    = 'L'
	KeyScanFaster = '['
	KeyScanSlower = ']'
	KeyQuit       = 'q'
)

func (e *Engine) handleKey(k event.Key) bool {
	if k.Ctrl {
		return false
	}

	switch k.Rune {
	case KeySortCPU, KeySortCPUAlt:
		e.sortOrder = SortByCPU
	case KeySortMem, KeySortMemAlt:
		e.sortOrder = SortByMem
	case KeySnapshot:
		if k.Alt {
			e.toggleLog()
		} else {
			e.takeSnapshot()
		}
	case KeySnapAlt:
		if !k.Alt {
			e.takeSnapshot()
		}
	case KeyScanFaster:
		e.collector.SetScanRate(e.collector.ScanRate().Faster())
	case KeyScanSlower:
		e.collector.SetScanRate(e.collector.ScanRate().Slower())
	case KeyQuit:
		e.stopped = true
		return true
	}
	return false
}
