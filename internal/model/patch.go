package model

// Patch is a partial update of Storage. Nil fields are left untouched.
type Patch struct {
	BlockTimeStart *Minutes
	BlockTimeEnd   *Minutes
	ActiveDays     *Weekdays
	AddUsage       uint64
}

// Apply writes the present fields into draft and adds AddUsage to the
// usage counter.
func (p Patch) Apply(draft *Storage) {
	if p.BlockTimeStart != nil {
		draft.UserConfig.BlockTimeStart = *p.BlockTimeStart
	}
	if p.BlockTimeEnd != nil {
		draft.UserConfig.BlockTimeEnd = *p.BlockTimeEnd
	}
	if p.ActiveDays != nil {
		draft.UserConfig.ActiveDays = *p.ActiveDays
	}
	draft.TotalUsage += p.AddUsage
}

// IsEmpty reports whether applying p would change nothing.
func (p Patch) IsEmpty() bool {
	return p.BlockTimeStart == nil && p.BlockTimeEnd == nil && p.ActiveDays == nil && p.AddUsage == 0
}
