package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alfredjeanlab/touchgrass/internal/config"
	"github.com/alfredjeanlab/touchgrass/internal/store"
	"github.com/alfredjeanlab/touchgrass/internal/store/bolt"
	"github.com/alfredjeanlab/touchgrass/internal/store/memory"
	"github.com/alfredjeanlab/touchgrass/internal/store/postgres"
	"github.com/alfredjeanlab/touchgrass/internal/store/redis"
	"github.com/alfredjeanlab/touchgrass/internal/store/s3"
)

func noClose() error { return nil }

// openBackend connects the backend selected by c. The returned func releases
// it.
func openBackend(ctx context.Context, c *config.Config) (store.Backend, func() error, error) {
	switch c.Backend {
	case config.BackendMemory:
		return memory.New(), noClose, nil

	case config.BackendBolt:
		if err := os.MkdirAll(filepath.Dir(c.BoltPath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create state dir: %w", err)
		}
		// Transient so that "track" does not lock out other commands.
		b, err := bolt.Open(c.BoltPath, bolt.Options{Transient: true})
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("bolt file", "path", b.Path())
		return b, b.Close, nil

	case config.BackendPostgres:
		b, err := postgres.New(c.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case config.BackendRedis:
		b, err := redis.Open(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case config.BackendS3:
		b, err := s3.New(ctx, s3.Config{
			Bucket:   c.S3Bucket,
			Prefix:   c.S3Prefix,
			Region:   c.S3Region,
			Endpoint: c.S3Endpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, noClose, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", c.Backend)
}
