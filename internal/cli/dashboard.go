package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/haskel/sysmon/internal/logger"
	"github.com/haskel/sysmon/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal; use 'sysmon snapshot' or 'sysmon record' for headless output")

func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := validConfig(GetConfigFile(), cmd.Flags())
	if err != nil {
		return err
	}

	// The dashboard owns the terminal; diagnostics only go to a file.
	log, closeLog, err := logger.Open(cfg.Logging, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("sysmon starting",
		"version", Version,
		"config", GetConfigFile(),
		"tick", cfg.TickRate(),
		"scan_rate", cfg.Dashboard.ScanRate,
		"log_dir", cfg.Logs.Dir,
	)

	eng := newEngine(cfg, log)
	defer func() {
		if err := eng.Close(); err != nil {
			log.Error("failed to close continuous log", "error", err)
		}
	}()

	if err := tui.Run(cmd.Context(), eng, cfg.TickRate(), log); err != nil {
		return err
	}

	log.Info("sysmon stopped")
	return nil
}
