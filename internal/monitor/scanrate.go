package monitor

import (
	"fmt"
	"slices"
)

// ScanRate is the number of ticks between expensive refreshes.
type ScanRate uint32

// ScanRatePresets lists every allowed ScanRate in ascending order.
// With a 250ms tick: 1=4/s, 2=2/s, 4=1/s, 8=0.5/s, 20=once per 5s.
var ScanRatePresets = []ScanRate{1, 2, 4, 8, 20}

const DefaultScanRate ScanRate = 4

// ParseScanRate validates n against the preset set.
func ParseScanRate(n int) (ScanRate, error) {
	for _, p := range ScanRatePresets {
		if int(p) == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("scan rate must be one of %v, got %d", ScanRatePresets, n)
}

func (r ScanRate) Valid() bool {
	return slices.Contains(ScanRatePresets, r)
}

// Faster returns the largest preset strictly below r, or r itself when r is
// already the smallest preset.
func (r ScanRate) Faster() ScanRate {
	for i := len(ScanRatePresets) - 1; i >= 0; i-- {
		if ScanRatePresets[i] < r {
			return ScanRatePresets[i]
		}
	}
	return r
}

// Slower returns the smallest preset strictly above r, or r itself when r is
// already the largest preset.
func (r ScanRate) Slower() ScanRate {
	for _, p := range ScanRatePresets {
		if p > r {
			return p
		}
	}
	return r
}
