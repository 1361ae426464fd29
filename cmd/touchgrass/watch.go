package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/alfredjeanlab/touchgrass/internal/ui"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Print storage and usage events as they happen",
	GroupID: "system",
	Args:    cobra.NoArgs,
	// Watching needs NATS only, not the store.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if settings.NATSURL == "" {
			return fmt.Errorf("TOUCHGRASS_NATS_URL is required for watch")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchEvents(ctx, settings.NATSURL, os.Stdout)
	},
}

func watchEvents(ctx context.Context, natsURL string, w io.Writer) error {
	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "err", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe(events.TopicAll)
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if jsonOutput {
				fmt.Fprintln(w, string(msg.Data))
				continue
			}
			fmt.Fprintln(w, describeEvent(msg))
		}
	}
}

// describeEvent renders one event as a single line.
func describeEvent(msg events.Message) string {
	topic := ui.RenderAccent(msg.Topic)
	switch msg.Topic {
	case events.TopicStorageUpdated:
		var ev events.StorageUpdated
		if err := json.Unmarshal(msg.Data, &ev); err == nil {
			cfg := ev.Storage.UserConfig
			return fmt.Sprintf("%s %s %s  %s-%s on %s", stamp(ev.At), topic, ev.Source,
				cfg.BlockTimeStart.Clock(), cfg.BlockTimeEnd.Clock(), cfg.ActiveDays)
		}
	case events.TopicStorageRemoved:
		var ev events.StorageRemoved
		if err := json.Unmarshal(msg.Data, &ev); err == nil {
			return fmt.Sprintf("%s %s %s", stamp(ev.At), topic, ev.Source)
		}
	case events.TopicStorageReset:
		var ev events.StorageReset
		if err := json.Unmarshal(msg.Data, &ev); err == nil {
			return fmt.Sprintf("%s %s %s  %s", stamp(ev.At), ui.RenderWarn(msg.Topic), ev.Source, ev.Reason)
		}
	case events.TopicUsageTicked:
		var ev events.UsageTicked
		if err := json.Unmarshal(msg.Data, &ev); err == nil {
			return fmt.Sprintf("%s %s %s  total %s", stamp(ev.At), topic, ev.Source, formatUsage(ev.TotalUsage))
		}
	}
	return fmt.Sprintf("%s %s", topic, string(msg.Data))
}

func stamp(t time.Time) string {
	return ui.RenderMuted(t.Local().Format("15:04:05"))
}
