package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alfredjeanlab/touchgrass/internal/config"
	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/alfredjeanlab/touchgrass/internal/idgen"
	"github.com/alfredjeanlab/touchgrass/internal/store"
	"github.com/alfredjeanlab/touchgrass/internal/ui"
	"github.com/spf13/cobra"
)

var (
	jsonOutput  bool
	backendName string
	slotKey     string
	envFile     string

	settings    *config.Config
	logger      = slog.Default()
	source      string
	configStore *store.ConfigStore
	publisher   events.Publisher
	closeStore  func() error
)

var rootCmd = &cobra.Command{
	Use:           "touchgrass <command>",
	Short:         "Keep a video site blocked outside your chosen hours",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd); err != nil {
			return err
		}
		return openStore(cmd.Context())
	},
}

// loadSettings reads .env and the environment, applies flag overrides and
// sets up logging. Commands that do not touch the store call only this.
func loadSettings(cmd *cobra.Command) error {
	if err := config.LoadDotenv(envFile); err != nil {
		return err
	}
	if backendName != "" {
		os.Setenv("TOUCHGRASS_BACKEND", backendName)
	}
	if slotKey != "" {
		os.Setenv("TOUCHGRASS_SLOT_KEY", slotKey)
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	settings = c
	logger = newLogger(c.LogLevel)
	source = idgen.MustContextIDFor(cmd.Name())
	if !ui.ShouldUseColor(os.Stdout) {
		ui.ForceNoColor()
	}
	return nil
}

func openStore(ctx context.Context) error {
	backend, closer, err := openBackend(ctx, settings)
	if err != nil {
		return err
	}
	configStore = store.New(backend, store.WithKey(settings.SlotKey))
	closeStore = closer

	pub, err := newPublisher(settings, logger)
	if err != nil {
		return err
	}
	publisher = pub
	logger.Debug("store opened", "backend", settings.Backend, "key", configStore.Key(), "source", source)
	return nil
}

// closeAll releases what openStore acquired. It runs after every command,
// failed ones included, so a bolt file lock is never left behind.
func closeAll() {
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		publisher = nil
	}
	if closeStore != nil {
		if err := closeStore(); err != nil {
			logger.Error("error closing store", "err", err)
		}
		closeStore = nil
	}
	configStore = nil
}

func execute() error {
	defer closeAll()
	return rootCmd.Execute()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "storage backend (memory, bolt, postgres, redis, s3); overrides TOUCHGRASS_BACKEND")
	rootCmd.PersistentFlags().StringVar(&slotKey, "key", "", "storage slot key; overrides TOUCHGRASS_SLOT_KEY")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddGroup(
		&cobra.Group{ID: "settings", Title: "Settings:"},
		&cobra.Group{ID: "status", Title: "Status:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Settings
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(resetCmd)

	// Status
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(usageCmd)

	// System
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if msg := store.UserMessage(err); msg != err.Error() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
