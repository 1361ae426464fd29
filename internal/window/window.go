// Package window decides whether a moment falls inside the configured
// blocking schedule. Everything here is pure: no I/O, no clocks.
package window

import (
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/model"
)

// InBlockingTimeWindow reports whether now lies inside the blocking window.
//
// For start <= end the window is [start, end). For start > end it wraps past
// midnight and covers everything except [end, start). Both cases reduce to a
// single XOR against the sorted interval.
func InBlockingTimeWindow(cfg model.Config, now model.Minutes) bool {
	start, end := cfg.BlockTimeStart, cfg.BlockTimeEnd
	normal := start <= end
	lo, hi := min(start, end), max(start, end)
	return normal == (lo <= now && now < hi)
}

// InActiveDayWindow reports whether blocking applies on the given weekday.
// weekdayRaw counts from Sunday = 0, as time.Weekday does; the bitmask counts
// from Monday = 0.
func InActiveDayWindow(cfg model.Config, weekdayRaw int) bool {
	if weekdayRaw < 0 || weekdayRaw > 6 {
		return false
	}
	return cfg.ActiveDays.Has((weekdayRaw + 6) % 7)
}

// MinuteOfDay returns the wall-clock minute of t in t's location.
func MinuteOfDay(t time.Time) model.Minutes {
	return model.Minutes(t.Hour()*60 + t.Minute())
}

// ShouldBlock combines both predicates for t.
func ShouldBlock(cfg model.Config, t time.Time) bool {
	return InBlockingTimeWindow(cfg, MinuteOfDay(t)) && InActiveDayWindow(cfg, int(t.Weekday()))
}
