// Package events announces changes to the stored record so that other
// execution contexts can react without polling the backend.
package events

import (
	"context"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/model"
)

// Event topic constants
const (
	TopicStorageUpdated = "touchgrass.storage.updated"
	TopicStorageRemoved = "touchgrass.storage.removed"
	TopicStorageReset   = "touchgrass.storage.reset"
	TopicUsageTicked    = "touchgrass.usage.ticked"

	// TopicAll matches every touchgrass topic.
	TopicAll = "touchgrass.>"
)

// StorageUpdated is published after a settings change has been written.
type StorageUpdated struct {
	Source  string        `json:"source"`
	Storage model.Storage `json:"storage"`
	At      time.Time     `json:"at"`
}

// StorageRemoved is published after the record was deleted on request.
type StorageRemoved struct {
	Source string    `json:"source"`
	At     time.Time `json:"at"`
}

// StorageReset is published after a corrupted record was discarded.
type StorageReset struct {
	Source string    `json:"source"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// UsageTicked is published after each usage minute was recorded.
type UsageTicked struct {
	Source     string    `json:"source"`
	TotalUsage uint64    `json:"total_usage"`
	At         time.Time `json:"at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
