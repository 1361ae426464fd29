package main

import (
	"context"
	"log/slog"

	"github.com/alfredjeanlab/touchgrass/internal/config"
	"github.com/alfredjeanlab/touchgrass/internal/events"
)

func newPublisher(c *config.Config, logger *slog.Logger) (events.Publisher, error) {
	if c.NATSURL == "" {
		logger.Debug("events disabled (TOUCHGRASS_NATS_URL not set)")
		return &events.NoopPublisher{}, nil
	}
	pub, err := events.NewNATSPublisher(c.NATSURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("events enabled", "nats_url", c.NATSURL)
	return pub, nil
}

// announce publishes ev. A one-shot command has already done its work, so a
// failed publish is only logged.
func announce(ctx context.Context, topic string, ev any) {
	if err := publisher.Publish(ctx, topic, ev); err != nil {
		logger.Warn("publishing event failed", "topic", topic, "err", err)
	}
}
