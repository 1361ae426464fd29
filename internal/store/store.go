// Package store persists the single touchgrass Storage record in a pluggable
// key-value backend.
//
// ConfigStore keeps no state between calls: every operation reads the backend
// afresh. Update is a plain read-modify-write with no locking, so two updates
// that interleave lose one of their writes; callers that need stronger
// guarantees must serialize their updates themselves.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfredjeanlab/touchgrass/internal/model"
)

// DefaultKey is the slot the record lives in.
const DefaultKey = "config"

// Mutator changes a draft of the stored record in place.
type Mutator interface {
	Apply(draft *model.Storage)
}

// MutatorFunc adapts a function to Mutator.
type MutatorFunc func(draft *model.Storage)

// Apply calls f(draft).
func (f MutatorFunc) Apply(draft *model.Storage) { f(draft) }

// Increment returns a Mutator that adds n minutes of usage.
func Increment(n uint64) Mutator {
	return MutatorFunc(func(draft *model.Storage) {
		draft.TotalUsage += n
	})
}

// ConfigStore maps model.Storage to and from one backend slot.
type ConfigStore struct {
	backend Backend
	key     string
}

// Option configures a ConfigStore.
type Option func(*ConfigStore)

// WithKey stores the record under key instead of DefaultKey.
func WithKey(key string) Option {
	return func(s *ConfigStore) {
		if key != "" {
			s.key = key
		}
	}
}

// New returns a ConfigStore over backend.
func New(backend Backend, opts ...Option) *ConfigStore {
	s := &ConfigStore{backend: backend, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot name.
func (s *ConfigStore) Key() string { return s.key }

// Get reads the record. It returns ErrEmptyStorage if nothing was ever stored
// and ErrCorruptedConfig if the slot holds something that is not a record.
func (s *ConfigStore) Get(ctx context.Context) (model.Storage, error) {
	if s.backend == nil {
		return model.Storage{}, fmt.Errorf("get %s: %w", s.key, ErrStorageNotFound)
	}
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return model.Storage{}, classify("get "+s.key, err)
	}
	st, ok, err := decodeEnvelope(data)
	if err != nil {
		return model.Storage{}, fmt.Errorf("get %s: %w: %w", s.key, ErrCorruptedConfig, err)
	}
	if !ok {
		return model.Storage{}, fmt.Errorf("get %s: %w", s.key, ErrEmptyStorage)
	}
	return st, nil
}

// Set replaces the record.
func (s *ConfigStore) Set(ctx context.Context, st model.Storage) error {
	if s.backend == nil {
		return fmt.Errorf("set %s: %w", s.key, ErrStorageNotFound)
	}
	if err := st.UserConfig.Validate(); err != nil {
		return fmt.Errorf("set %s: %w", s.key, err)
	}
	data, err := encodeEnvelope(st)
	if err != nil {
		return fmt.Errorf("set %s: encode: %w", s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return classify("set "+s.key, err)
	}
	return nil
}

// Remove deletes the record. Removing a missing record succeeds.
func (s *ConfigStore) Remove(ctx context.Context) error {
	if s.backend == nil {
		return fmt.Errorf("remove %s: %w", s.key, ErrStorageNotFound)
	}
	if err := s.backend.Remove(ctx, s.key); err != nil {
		return classify("remove "+s.key, err)
	}
	return nil
}

// Update reads the record, falling back to model.DefaultStorage when the slot
// is empty, applies m and writes the result back. Any other read error,
// including ErrCorruptedConfig, is returned without writing.
func (s *ConfigStore) Update(ctx context.Context, m Mutator) (model.Storage, error) {
	draft, err := s.Get(ctx)
	if errors.Is(err, ErrEmptyStorage) {
		draft = model.DefaultStorage()
	} else if err != nil {
		return model.Storage{}, err
	}
	m.Apply(&draft)
	if err := s.Set(ctx, draft); err != nil {
		return model.Storage{}, err
	}
	return draft, nil
}
