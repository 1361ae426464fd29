package model

// Config is the user's blocking schedule.
//
// A start later than the end denotes a window that wraps past midnight.
type Config struct {
	BlockTimeStart Minutes  `json:"block_time_start"`
	BlockTimeEnd   Minutes  `json:"block_time_end"`
	ActiveDays     Weekdays `json:"active_days"`
}

// Storage is the unit persisted in the backend slot.
type Storage struct {
	UserConfig Config `json:"user_config"`
	TotalUsage uint64 `json:"total_usage"` // minutes, never decreases
}

// DefaultStorage is the value used when no record exists yet.
func DefaultStorage() Storage {
	return Storage{}
}
