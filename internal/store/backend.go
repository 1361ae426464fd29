package store

import (
	"context"
	"errors"
)

// Backend is the key-value facility the store persists into. Values are
// opaque JSON documents.
type Backend interface {
	// Get returns the value stored under key, or (nil, nil) if key was never
	// set. Backends may also return the empty object "{}" for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// Backends wrap one of these to tell the store why an operation failed.
// Failures that wrap none of them are treated like ErrBackendDenied.
var (
	ErrBackendDenied      = errors.New("backend denied access")
	ErrBackendQuota       = errors.New("backend quota exceeded")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
