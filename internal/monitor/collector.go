package monitor

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/time/rate"
)

// warnEvery bounds how often a persistently failing read is logged.
const warnEvery = 30 * time.Second

// CollectorConfig configures a Collector.
type CollectorConfig struct {
	ScanRate       ScanRate
	ThermalZoneDir string
}

// Collector produces Snapshots. Cheap metrics (CPU, memory, network) are
// refreshed on every call; processes, disk I/O and thermals only when the
// tick counter is a multiple of the scan rate. Collect never fails: a read
// error keeps the previously observed value.
type Collector struct {
	source     Source
	thermalDir string
	scanRate   ScanRate
	tick       uint32
	logger     *slog.Logger
	warnings   map[string]*rate.Limiter
	now        func() time.Time

	cpu     []CoreUsage
	ram     ByteUsage
	swap    ByteUsage
	network NetworkTotals

	diskIO    DiskIOTotals
	processes []ProcessInfo
	thermals  []ThermalInfo
	hwmon     []ThermalInfo
}

func NewCollector(source Source, cfg CollectorConfig, logger *slog.Logger) *Collector {
	if !cfg.ScanRate.Valid() {
		cfg.ScanRate = DefaultScanRate
	}
	return &Collector{
		source:     source,
		thermalDir: cfg.ThermalZoneDir,
		scanRate:   cfg.ScanRate,
		logger:     logger,
		warnings:   make(map[string]*rate.Limiter),
		now:        time.Now,
	}
}

func (c *Collector) ScanRate() ScanRate {
	return c.scanRate
}

// SetScanRate changes the expensive refresh interval. It applies from the
// next Collect call; the tick counter is left untouched.
func (c *Collector) SetScanRate(r ScanRate) {
	if r == 0 {
		return
	}
	c.scanRate = r
}

func (c *Collector) Collect() Snapshot {
	tick := c.tick
	full := tick%uint32(c.scanRate) == 0
	c.tick++

	c.refreshCheap()
	if full {
		c.refreshExpensive()
	}

	return Snapshot{
		CPU:         slices.Clone(c.cpu),
		RAM:         c.ram,
		Swap:        c.swap,
		Network:     c.network,
		DiskIO:      c.diskIO,
		Processes:   slices.Clone(c.processes),
		Thermals:    cloneThermals(c.thermals),
		Tick:        tick,
		Full:        full,
		CollectedAt: c.now(),
	}
}

func (c *Collector) refreshCheap() {
	if percents, err := c.source.CPUPercents(); err != nil {
		c.warn("cpu", err)
	} else {
		cores := make([]CoreUsage, len(percents))
		for i, p := range percents {
			cores[i] = CoreUsage{ID: i, UsagePercent: p}
		}
		c.cpu = cores
	}

	if ram, swap, err := c.source.Memory(); err != nil {
		c.warn("memory", err)
	} else {
		c.ram, c.swap = ram, swap
	}

	if net, err := c.source.NetCounters(); err != nil {
		c.warn("network", err)
	} else {
		c.network = net
	}
}

func (c *Collector) refreshExpensive() {
	if stats, err := c.source.Processes(); err != nil {
		c.warn("process", err)
	} else {
		var disk DiskIOTotals
		procs := make([]ProcessInfo, len(stats))
		for i, s := range stats {
			disk.Read += s.ReadBytes
			disk.Write += s.WriteBytes
			procs[i] = s.ProcessInfo
		}
		SortByCPU(procs)
		c.processes = procs
		c.diskIO = disk
	}

	c.thermals = c.readThermals()
}

// readThermals concatenates sysfs zones and hardware-monitor components.
// Sensors present in both are listed twice. A failed hardware-monitor read
// reuses the components from the last successful one.
func (c *Collector) readThermals() []ThermalInfo {
	var thermals []ThermalInfo

	if c.thermalDir != "" {
		zones, err := ReadThermalZones(c.thermalDir)
		if err != nil {
			c.logger.Debug("thermal zones unavailable", "dir", c.thermalDir, "error", err)
		}
		thermals = append(thermals, zones...)
	}

	if readings, err := c.source.Sensors(); err != nil {
		c.warn("sensors", err)
	} else {
		hwmon := make([]ThermalInfo, 0, len(readings))
		for _, r := range readings {
			if r.Temperature == nil {
				continue
			}
			hwmon = append(hwmon, ThermalInfo{
				Label:           r.Label,
				TempCelsius:     *r.Temperature,
				CriticalCelsius: r.Critical,
			})
		}
		c.hwmon = hwmon
	}
	thermals = append(thermals, cloneThermals(c.hwmon)...)

	return thermals
}

func (c *Collector) warn(source string, err error) {
	lim, ok := c.warnings[source]
	if !ok {
		lim = rate.NewLimiter(rate.Every(warnEvery), 1)
		c.warnings[source] = lim
	}
	if lim.Allow() {
		c.logger.Warn("metric read failed, keeping previous value",
			"source", source,
			"error", err,
		)
	}
}

// SortByCPU orders processes by CPU usage, highest first.
func SortByCPU(procs []ProcessInfo) {
	slices.SortStableFunc(procs, func(a, b ProcessInfo) int {
		return cmp.Compare(b.CPUPercent, a.CPUPercent)
	})
}

// SortByMemory orders processes by resident memory, largest first.
func SortByMemory(procs []ProcessInfo) {
	slices.SortStableFunc(procs, func(a, b ProcessInfo) int {
		return cmp.Compare(b.MemBytes, a.MemBytes)
	})
}
