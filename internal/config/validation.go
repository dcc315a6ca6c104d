package config

import (
	"errors"
	"fmt"

	"github.com/haskel/sysmon/internal/monitor"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Dashboard.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dashboard: %w", err))
	}

	if err := c.Logs.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logs: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (d *DashboardConfig) Validate() error {
	var errs []error

	if d.TickRateMS < 50 {
		errs = append(errs, fmt.Errorf("tick_rate_ms must be at least 50, got %d", d.TickRateMS))
	}

	if d.HistoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("history_capacity must be at least 1, got %d", d.HistoryCapacity))
	}

	if _, err := monitor.ParseScanRate(d.ScanRate); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (l *LogsConfig) Validate() error {
	if l.Dir == "" {
		return fmt.Errorf("dir cannot be empty")
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}
