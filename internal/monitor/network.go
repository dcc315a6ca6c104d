package monitor

import (
	"github.com/shirou/gopsutil/v4/net"
)

// NetCounters sums cumulative received/transmitted bytes over all interfaces.
func (s *SystemSource) NetCounters() (NetworkTotals, error) {
	counters, err := net.IOCounters(true)
	if err != nil {
		return NetworkTotals{}, err
	}

	var totals NetworkTotals
	for _, c := range counters {
		totals.Received += c.BytesRecv
		totals.Transmitted += c.BytesSent
	}
	return totals, nil
}
