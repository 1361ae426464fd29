package model

import (
	"fmt"
	"strings"
)

// Weekdays is a bitmask of active days. Bit i is weekday i, Monday = 0.
type Weekdays uint8

// Weekday bits, Monday first.
const (
	Monday Weekdays = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	AllDays  = Monday | Tuesday | Wednesday | Thursday | Friday | Saturday | Sunday
	Workdays = Monday | Tuesday | Wednesday | Thursday | Friday
)

var dayNames = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// Has reports whether day index i (Monday = 0) is set.
func (w Weekdays) Has(i int) bool {
	if i < 0 || i > 6 {
		return false
	}
	return w&(1<<uint(i)) != 0
}

// String lists the active days, e.g. "mon,tue". An empty mask renders as "none".
func (w Weekdays) String() string {
	var names []string
	for i, name := range dayNames {
		if w.Has(i) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// ParseWeekdays parses a comma-separated list of day names. Besides the
// three-letter names it accepts "all", "weekdays", "weekend" and "none".
func ParseWeekdays(s string) (Weekdays, error) {
	var w Weekdays
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
			continue
		case "none":
			continue
		case "all":
			w |= AllDays
			continue
		case "weekdays":
			w |= Workdays
			continue
		case "weekend":
			w |= Saturday | Sunday
			continue
		}
		found := false
		for i, name := range dayNames {
			if part == name || (len(part) > 3 && strings.HasPrefix(part, name)) {
				w |= 1 << uint(i)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown day %q", part)
		}
	}
	return w, nil
}
