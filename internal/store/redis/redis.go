// Package redis implements store.Backend on Redis, one string key per slot.
package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

// DefaultPrefix namespaces slot keys.
const DefaultPrefix = "touchgrass:slot:"

// Backend stores slots as plain Redis strings.
type Backend struct {
	client *goredis.Client
	prefix string
}

var _ store.Backend = (*Backend)(nil)

// New wraps an existing client.
func New(client *goredis.Client) *Backend {
	return &Backend{client: client, prefix: DefaultPrefix}
}

// Open connects to the Redis server named by url (redis://[user:pass@]host:port/db)
// and checks it answers.
func Open(ctx context.Context, url string) (*Backend, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", classify(err))
	}
	return New(client), nil
}

// Close closes the client.
func (b *Backend) Close() error {
	return b.client.Close()
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return v, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	// No expiry: the record lives until removed.
	return classify(b.client.Set(ctx, b.prefix+key, value, 0).Err())
}

// Remove uses DEL, which reports zero deletions for a missing key rather than
// an error.
func (b *Backend) Remove(ctx context.Context, key string) error {
	return classify(b.client.Del(ctx, b.prefix+key).Err())
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "NOPERM"), strings.HasPrefix(msg, "NOAUTH"), strings.HasPrefix(msg, "WRONGPASS"),
		strings.HasPrefix(msg, "READONLY"):
		return fmt.Errorf("%w: %w", store.ErrBackendDenied, err)
	case strings.HasPrefix(msg, "OOM"):
		return fmt.Errorf("%w: %w", store.ErrBackendQuota, err)
	case strings.HasPrefix(msg, "LOADING"), strings.HasPrefix(msg, "MASTERDOWN"):
		return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
	}
	var netErr net.Error
	if errors.Is(err, goredis.ErrClosed) || errors.Is(err, io.EOF) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
	}
	return err
}
