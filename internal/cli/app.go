package cli

import (
	"log/slog"

	"github.com/haskel/sysmon/internal/config"
	"github.com/haskel/sysmon/internal/engine"
	"github.com/haskel/sysmon/internal/monitor"
)

func newCollector(cfg *config.Config, scanRate monitor.ScanRate, log *slog.Logger) *monitor.Collector {
	return monitor.NewCollector(
		monitor.NewSystemSource(cfg.Sensors.HWMon),
		monitor.CollectorConfig{
			ScanRate:       scanRate,
			ThermalZoneDir: cfg.Sensors.ThermalZoneDir,
		},
		log,
	)
}

func newEngine(cfg *config.Config, log *slog.Logger) *engine.Engine {
	collector := newCollector(cfg, monitor.ScanRate(cfg.Dashboard.ScanRate), log)
	return engine.New(engine.Config{
		LogDir:          cfg.Logs.Dir,
		HistoryCapacity: cfg.Dashboard.HistoryCapacity,
		TickRate:        cfg.TickRate(),
	}, collector, log)
}
