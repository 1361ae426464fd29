package model

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a wall-clock day.
const MinutesPerDay = 24 * 60

// Minutes is a time of day expressed as minutes since midnight.
type Minutes uint16

// Valid reports whether m is a representable time of day (0-1439).
func (m Minutes) Valid() bool {
	return m < MinutesPerDay
}

// Clock formats m as "HH:MM".
func (m Minutes) Clock() string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (m Minutes) String() string {
	return m.Clock()
}

// ParseClock parses "HH:MM" (24-hour) into minutes since midnight.
func ParseClock(s string) (Minutes, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return Minutes(hour*60 + minute), nil
}
