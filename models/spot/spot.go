package spot

import "fmt"

// Spot represents a surf spot with its static attributes.
type Spot struct {
	SpotID    int64   `json:"spot_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Timezone is the IANA zone name used for local-date grouping.
	Timezone string `json:"timezone"`

	BottomType      string `json:"bottom_type,omitempty"`
	BreakType       string `json:"break_type,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	State           string `json:"state,omitempty"`
	Region          string `json:"region,omitempty"`

	// Ideal condition attributes of the break itself, independent of
	// any user's preferences.
	IdealSwellDirection []float64 `json:"ideal_swell_direction,omitempty"`
	IdealWindDirection  []float64 `json:"ideal_wind_direction,omitempty"`
	IdealSeaLevel       *float64  `json:"ideal_sea_level,omitempty"`
	IdealTideFlow       []string  `json:"ideal_tide_flow,omitempty"`
}

func (s *Spot) ToString() string {
	return fmt.Sprintf("Spot(id=%d, name=%s, lat=%f, lon=%f)",
		s.SpotID, s.Name, s.Latitude, s.Longitude)
}
