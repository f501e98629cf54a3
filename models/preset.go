package models

// Preset is a saved recommendation request: the spots a user checks,
// the time window they can surf, and their day selection.
type Preset struct {
	PresetID string  `json:"preset_id"`
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	SpotIDs  []int64 `json:"spot_ids"`

	// StartTime and EndTime are local times of day, "HH:MM".
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	DaySelection DaySelection `json:"day_selection"`
	IsDefault    bool         `json:"is_default"`
}
