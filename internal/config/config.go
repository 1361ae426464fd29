package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backend names a store.Backend implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendBolt     Backend = "bolt"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendS3       Backend = "s3"
)

// Backends lists every accepted TOUCHGRASS_BACKEND value.
var Backends = []Backend{BackendMemory, BackendBolt, BackendPostgres, BackendRedis, BackendS3}

type Config struct {
	Backend Backend // TOUCHGRASS_BACKEND (default "bolt")
	SlotKey string  // TOUCHGRASS_SLOT_KEY (default "config")

	BoltPath    string // TOUCHGRASS_BOLT_PATH (default <user config dir>/touchgrass/touchgrass.db)
	DatabaseURL string // TOUCHGRASS_DATABASE_URL (required for postgres)
	RedisURL    string // TOUCHGRASS_REDIS_URL (required for redis)

	S3Bucket   string // TOUCHGRASS_S3_BUCKET (required for s3)
	S3Prefix   string // TOUCHGRASS_S3_PREFIX (default "touchgrass/")
	S3Region   string // TOUCHGRASS_S3_REGION (default "us-east-1")
	S3Endpoint string // TOUCHGRASS_S3_ENDPOINT (custom endpoint for MinIO)

	NATSURL string // TOUCHGRASS_NATS_URL (optional, empty = no events)

	TickInterval time.Duration // TOUCHGRASS_TICK_INTERVAL (default 1m)
	LogLevel     string        // TOUCHGRASS_LOG_LEVEL (default "info")
}

// Load reads the environment. Call LoadDotenv first to pick up a .env file.
func Load() (*Config, error) {
	c := &Config{
		Backend:     Backend(strings.ToLower(envOrDefault("TOUCHGRASS_BACKEND", string(BackendBolt)))),
		SlotKey:     envOrDefault("TOUCHGRASS_SLOT_KEY", "config"),
		BoltPath:    envOrDefault("TOUCHGRASS_BOLT_PATH", defaultBoltPath()),
		DatabaseURL: os.Getenv("TOUCHGRASS_DATABASE_URL"),
		RedisURL:    os.Getenv("TOUCHGRASS_REDIS_URL"),
		S3Bucket:    os.Getenv("TOUCHGRASS_S3_BUCKET"),
		S3Prefix:    envOrDefault("TOUCHGRASS_S3_PREFIX", "touchgrass/"),
		S3Region:    envOrDefault("TOUCHGRASS_S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("TOUCHGRASS_S3_ENDPOINT"),
		NATSURL:     os.Getenv("TOUCHGRASS_NATS_URL"),
		LogLevel:    envOrDefault("TOUCHGRASS_LOG_LEVEL", "info"),
	}

	d, err := time.ParseDuration(envOrDefault("TOUCHGRASS_TICK_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("TOUCHGRASS_TICK_INTERVAL: %w", err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("TOUCHGRASS_TICK_INTERVAL must be positive, got %s", d)
	}
	c.TickInterval = d

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings the selected backend needs are present.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("TOUCHGRASS_BOLT_PATH is required for the bolt backend")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("TOUCHGRASS_DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("TOUCHGRASS_REDIS_URL is required for the redis backend")
		}
	case BackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("TOUCHGRASS_S3_BUCKET is required for the s3 backend")
		}
	default:
		return fmt.Errorf("TOUCHGRASS_BACKEND: unknown backend %q (want one of %v)", c.Backend, Backends)
	}
	if c.SlotKey == "" {
		return fmt.Errorf("TOUCHGRASS_SLOT_KEY must not be empty")
	}
	return nil
}

// LoadDotenv loads KEY=VALUE files into the environment without overriding
// variables that are already set. Missing files are skipped. With no paths it
// reads ".env" in the working directory.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func defaultBoltPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".touchgrass.db"
	}
	return filepath.Join(dir, "touchgrass", "touchgrass.db")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
