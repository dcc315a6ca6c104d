package monitor

// DefaultHistorySize is the number of samples kept per series.
const DefaultHistorySize = 120

// History keeps the most recent throughput samples for sparkline rendering.
// The four series share one ring index, so they always have equal length and
// are evicted together.
//
// History is not safe for concurrent use; it belongs to the engine loop.
type History struct {
	netRx     []uint64
	netTx     []uint64
	diskRead  []uint64
	diskWrite []uint64
	head      int
	count     int
	size      int
}

// HistorySeries is a copy of the buffer contents, oldest sample first.
type HistorySeries struct {
	NetRx     []uint64
	NetTx     []uint64
	DiskRead  []uint64
	DiskWrite []uint64
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		netRx:     make([]uint64, size),
		netTx:     make([]uint64, size),
		diskRead:  make([]uint64, size),
		diskWrite: make([]uint64, size),
		size:      size,
	}
}

// Push appends one sample to every series. Counter resets are stored as-is.
func (h *History) Push(rx, tx, read, write uint64) {
	h.netRx[h.head] = rx
	h.netTx[h.head] = tx
	h.diskRead[h.head] = read
	h.diskWrite[h.head] = write
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

func (h *History) Len() int { return h.count }

func (h *History) Cap() int { return h.size }

// Series returns copies of all four sequences in push order.
func (h *History) Series() HistorySeries {
	return HistorySeries{
		NetRx:     h.ordered(h.netRx),
		NetTx:     h.ordered(h.netTx),
		DiskRead:  h.ordered(h.diskRead),
		DiskWrite: h.ordered(h.diskWrite),
	}
}

func (h *History) ordered(data []uint64) []uint64 {
	out := make([]uint64, h.count)
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		out[i] = data[(start+i)%h.size]
	}
	return out
}

// Deltas converts a cumulative series into per-step increments. A step
// where the counter went backwards yields 0. The result has one element
// fewer than the input.
func Deltas(series []uint64) []uint64 {
	if len(series) < 2 {
		return nil
	}
	out := make([]uint64, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i] > series[i-1] {
			out[i-1] = series[i] - series[i-1]
		}
	}
	return out
}
