package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/haskel/sysmon/internal/config"
)

// Flags that override configuration values.
const (
	flagLogDir   = "log-dir"
	flagTick     = "tick"
	flagScanRate = "scan-rate"
	flagHistory  = "history"
	flagLogLevel = "log-level"
	flagLogFile  = "log-file"
)

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String(flagLogDir, "", "directory for CSV snapshots and recordings (env "+config.LogDirEnv+")")
	fs.Duration(flagTick, 0, "dashboard tick rate, e.g. 250ms")
	fs.Int(flagScanRate, 0, "ticks between process scans (1, 2, 4, 8 or 20)")
	fs.Int(flagHistory, 0, "samples kept for throughput sparklines")
	fs.String(flagLogLevel, "", "diagnostic log level (debug, info, warn, error)")
	fs.String(flagLogFile, "", "diagnostic log file")
}

// loadConfig reads the config file, if any, and applies environment and
// flag overrides. The result is not validated.
func loadConfig(path string, fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(flagLogDir) {
		if cfg.Logs.Dir, err = fs.GetString(flagLogDir); err != nil {
			return err
		}
	}

	if fs.Changed(flagTick) {
		tick, err := fs.GetDuration(flagTick)
		if err != nil {
			return err
		}
		cfg.Dashboard.TickRateMS = int(tick / time.Millisecond)
	}

	if fs.Changed(flagScanRate) {
		if cfg.Dashboard.ScanRate, err = fs.GetInt(flagScanRate); err != nil {
			return err
		}
	}

	if fs.Changed(flagHistory) {
		if cfg.Dashboard.HistoryCapacity, err = fs.GetInt(flagHistory); err != nil {
			return err
		}
	}

	if fs.Changed(flagLogLevel) {
		if cfg.Logging.Level, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}

	if fs.Changed(flagLogFile) {
		if cfg.Logging.File, err = fs.GetString(flagLogFile); err != nil {
			return err
		}
	}

	return nil
}

// validConfig is loadConfig followed by validation.
func validConfig(path string, fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := loadConfig(path, fs)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
