// Package guard turns the stored schedule into a block/allow decision for a
// moment in time, and applies the recovery policy for unreadable records.
package guard

import (
	"context"
	"errors"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/alfredjeanlab/touchgrass/internal/store"
	"github.com/alfredjeanlab/touchgrass/internal/window"
)

// Reader is the read side of store.ConfigStore.
type Reader interface {
	Get(ctx context.Context) (model.Storage, error)
}

// ReadRemover can also discard the record.
type ReadRemover interface {
	Reader
	Remove(ctx context.Context) error
}

// Decision is the outcome of Check.
type Decision struct {
	Blocked      bool         `json:"blocked"`
	InTimeWindow bool         `json:"in_time_window"`
	ActiveDay    bool         `json:"active_day"`
	Config       model.Config `json:"config"`
	At           time.Time    `json:"at"`
}

// Reason describes the decision in a few words.
func (d Decision) Reason() string {
	switch {
	case d.Blocked:
		return "inside blocking window on an active day"
	case !d.ActiveDay && !d.InTimeWindow:
		return "outside blocking window, inactive day"
	case !d.ActiveDay:
		return "inactive day"
	default:
		return "outside blocking window"
	}
}

// Check reads the current schedule and evaluates it at now. Store errors are
// returned unchanged with a zero Decision, which never blocks.
func Check(ctx context.Context, r Reader, now time.Time) (Decision, error) {
	st, err := r.Get(ctx)
	if err != nil {
		return Decision{At: now}, err
	}
	return Evaluate(st.UserConfig, now), nil
}

// Evaluate applies both window predicates to cfg at now.
func Evaluate(cfg model.Config, now time.Time) Decision {
	d := Decision{
		InTimeWindow: window.InBlockingTimeWindow(cfg, window.MinuteOfDay(now)),
		ActiveDay:    window.InActiveDayWindow(cfg, int(now.Weekday())),
		Config:       cfg,
		At:           now,
	}
	d.Blocked = d.InTimeWindow && d.ActiveDay
	return d
}

// ResetMessage is shown after Recover discards a corrupted record.
const ResetMessage = "Your settings were corrupted and have been reset. Please set your blocking window again."

// Recovery is the outcome of Recover.
type Recovery struct {
	Storage    model.Storage
	Configured bool // a valid record was read
	Reset      bool // a corrupted record was removed
}

// Recover reads the record once for a settings screen. An empty slot yields
// the defaults. A corrupted record is removed and Reset is set so the user
// can be told their settings were lost. Other errors are returned.
func Recover(ctx context.Context, rs ReadRemover) (Recovery, error) {
	st, err := rs.Get(ctx)
	switch {
	case err == nil:
		return Recovery{Storage: st, Configured: true}, nil
	case errors.Is(err, store.ErrEmptyStorage):
		return Recovery{Storage: model.DefaultStorage()}, nil
	case errors.Is(err, store.ErrCorruptedConfig):
		if rmErr := rs.Remove(ctx); rmErr != nil {
			return Recovery{}, rmErr
		}
		return Recovery{Storage: model.DefaultStorage(), Reset: true}, nil
	default:
		return Recovery{}, err
	}
}
