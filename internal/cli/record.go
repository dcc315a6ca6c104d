package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/sysmon/internal/engine"
	"github.com/haskel/sysmon/internal/event"
	"github.com/haskel/sysmon/internal/logger"
)

var recordDuration time.Duration

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Continuously log the process table to CSV",
	Long: `Run the collector without a dashboard and append the process table to
sysmon-<timestamp>.csv in the log directory on every tick, as alt+l does in
the dashboard.

Examples:
  sysmon record                  # until interrupted
  sysmon record --duration 5m    # stop after five minutes
  sysmon record --tick 1s        # one sample per second`,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().DurationVar(&recordDuration, "duration", 0, "stop after this long (0 runs until interrupted)")
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := validConfig(GetConfigFile(), cmd.Flags())
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Open(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	eng := newEngine(cfg, log)
	if !eng.StartLog() {
		return fmt.Errorf("failed to start recording in %s", cfg.Logs.Dir)
	}
	path := eng.State().LogPath

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if recordDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, recordDuration)
		defer cancel()
	}

	log.Info("recording started", "path", path, "tick", cfg.TickRate(), "duration", recordDuration)
	fmt.Fprintf(cmd.ErrOrStderr(), "Recording to %s (Ctrl+C to stop)\n", path)

	events := event.NewSource(cfg.TickRate(), nil, log).Run(ctx)
	loopErr := engine.Loop(ctx, eng, events, nil)

	if err := eng.Close(); err != nil {
		return fmt.Errorf("failed to close recording: %w", err)
	}
	if loopErr != nil && !errors.Is(loopErr, context.Canceled) && !errors.Is(loopErr, context.DeadlineExceeded) {
		return loopErr
	}

	log.Info("recording stopped", "path", path)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
