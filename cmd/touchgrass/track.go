package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alfredjeanlab/touchgrass/internal/usage"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record usage minutes until interrupted",
	Long: `Record usage minutes until interrupted.

One minute is counted immediately and one more every TOUCHGRASS_TICK_INTERVAL.
Running track next to a settings change can lose one of the two writes; the
store does not lock.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := usage.NewRecorder(configStore, publisher, settings.TickInterval, source, logger)
		rec.Start()
		logger.Info("usage recorder started",
			"backend", settings.Backend,
			"key", configStore.Key(),
			"interval", settings.TickInterval,
			"source", source,
		)

		// Wait for SIGINT or SIGTERM.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)

		rec.Stop()
		logger.Info("usage recorder stopped")
		return nil
	},
}
