// Package bolt implements store.Backend on a local bbolt file. It is the
// default backend for a single workstation.
package bolt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/alfredjeanlab/touchgrass/internal/store"
)

var slotsBucket = []byte("slots")

// Options tunes Open.
type Options struct {
	// ReadOnly opens the file with a shared lock. Writes fail as denied.
	ReadOnly bool
	// Timeout bounds the wait for the file lock. Zero means one second.
	Timeout time.Duration
	// Transient holds the file lock only for the duration of each call, so
	// a long-running tracker and one-shot commands can share the file.
	Transient bool
}

// Backend keeps every slot in one bucket. bbolt serializes writers, so each
// call is atomic on its own.
type Backend struct {
	path string
	opts Options

	mu     sync.Mutex
	db     *bolt.DB // nil in transient mode
	closed bool
}

var _ store.Backend = (*Backend)(nil)

// Open opens or creates the database at path and makes sure the slots
// bucket exists.
func Open(path string, opts Options) (*Backend, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second
	}
	b := &Backend{path: path, opts: opts}
	db, err := b.open()
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	if opts.Transient {
		if err := db.Close(); err != nil {
			return nil, fmt.Errorf("close bolt %s: %w", path, err)
		}
	} else {
		b.db = db
	}
	return b, nil
}

func (b *Backend) open() (*bolt.DB, error) {
	db, err := bolt.Open(b.path, 0o600, &bolt.Options{Timeout: b.opts.Timeout, ReadOnly: b.opts.ReadOnly})
	if err != nil {
		return nil, classify(err)
	}
	if !b.opts.ReadOnly {
		if err := db.Update(func(tx *bolt.Tx) error {
			_, e := tx.CreateBucketIfNotExists(slotsBucket)
			return e
		}); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create bucket: %w", classify(err))
		}
	}
	return db, nil
}

// Close releases the file lock. Later calls fail as unavailable.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (b *Backend) Path() string { return b.path }

// withDB runs fn against the shared handle, or against a handle opened for
// this call in transient mode.
func (b *Backend) withDB(fn func(*bolt.DB) error) error {
	b.mu.Lock()
	closed, db := b.closed, b.db
	b.mu.Unlock()

	if closed {
		return classify(bolt.ErrDatabaseNotOpen)
	}
	if db != nil {
		return classify(fn(db))
	}
	db, err := b.open()
	if err != nil {
		return err
	}
	defer db.Close()
	return classify(fn(db))
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := b.withDB(func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			bkt := tx.Bucket(slotsBucket)
			if bkt == nil {
				return nil
			}
			if v := bkt.Get([]byte(key)); v != nil {
				// v is only valid inside the transaction.
				out = bytes.Clone(v)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.withDB(func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bkt, err := tx.CreateBucketIfNotExists(slotsBucket)
			if err != nil {
				return err
			}
			return bkt.Put([]byte(key), value)
		})
	})
}

func (b *Backend) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.withDB(func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bkt := tx.Bucket(slotsBucket)
			if bkt == nil {
				return nil
			}
			return bkt.Delete([]byte(key))
		})
	})
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrBackendDenied), errors.Is(err, store.ErrBackendQuota),
		errors.Is(err, store.ErrBackendUnavailable):
		return err
	case errors.Is(err, bolt.ErrDatabaseReadOnly), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", store.ErrBackendDenied, err)
	case errors.Is(err, bolt.ErrDatabaseNotOpen), errors.Is(err, bolt.ErrTimeout), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", store.ErrBackendUnavailable, err)
	}
	return err
}
