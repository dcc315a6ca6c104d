package engine

// SortOrder selects how the process table is ordered.
type SortOrder int

const (
	SortByCPU SortOrder = iota
	SortByMem
)

func (s SortOrder) String() string {
	switch s {
	case SortByMem:
		return "MEM"
	default:
		return "CPU"
	}
}
