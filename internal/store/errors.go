package store

import (
	"context"
	"errors"
	"fmt"
)

// Error kinds returned by ConfigStore. Context cancellation and
// model.ErrInvalidConfig from Set are passed through as they are.
var (
	ErrWontAllowStorage = errors.New("storage: the user has not allowed storage")
	ErrEmptyStorage     = errors.New("storage: the storage is empty")
	ErrStorageNotFound  = errors.New("storage: the storage context was not found")
	ErrCorruptedConfig  = errors.New("storage: the config is corrupted")
)

// classify maps a backend failure onto the store's error kinds, keeping the
// backend error in the chain.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, ErrBackendUnavailable):
		return fmt.Errorf("%s: %w: %w", op, ErrStorageNotFound, err)
	default:
		// Denied, quota and anything unrecognized need the user's attention
		// in the same way.
		return fmt.Errorf("%s: %w: %w", op, ErrWontAllowStorage, err)
	}
}

// UserMessage returns the text shown to the user for a store error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyStorage):
		return "touchgrass is not set up yet. Pick a blocking window to get started."
	case errors.Is(err, ErrStorageNotFound):
		return "Storage was not found. This environment does not provide a place to keep your settings."
	case errors.Is(err, ErrWontAllowStorage):
		return "You need to allow storage for touchgrass to work."
	case errors.Is(err, ErrCorruptedConfig):
		return "Your saved settings could not be read. Run `touchgrass show` to discard them and start over."
	default:
		return err.Error()
	}
}
