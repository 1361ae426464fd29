// Package memory is an in-process store.Backend. Like browser extension
// storage it answers a read of a missing key with the empty object.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

var emptyObject = []byte("{}")

// Backend keeps slots in a map guarded by a mutex. Each call is atomic;
// nothing spans a Get followed by a Set.
type Backend struct {
	mu    sync.Mutex
	slots map[string][]byte
}

var _ store.Backend = (*Backend)(nil)

// New returns an empty Backend.
func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.slots[key]
	if !ok {
		return bytes.Clone(emptyObject), nil
	}
	return bytes.Clone(v), nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[key] = bytes.Clone(value)
	return nil
}

func (b *Backend) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, key)
	return nil
}

// Raw returns the stored bytes for key without interpretation.
func (b *Backend) Raw(key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.slots[key]
	return bytes.Clone(v), ok
}

// Len returns the number of stored slots.
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.slots)
}
