package models

// Preference is a stored preference record for one (user, spot) pair or
// one (level, spot) pair. Fields are pointers so that a record can
// carry only the values its owner actually set; the resolution
// hierarchy overlays the rest.
type Preference struct {
	PreferenceID int64  `json:"preference_id"`
	UserID       string `json:"user_id,omitempty"`
	SpotID       int64  `json:"spot_id"`

	MinWaveHeight   *float64 `json:"min_wave_height,omitempty"`
	IdealWaveHeight *float64 `json:"ideal_wave_height,omitempty"`
	MaxWaveHeight   *float64 `json:"max_wave_height,omitempty"`

	IdealWaveDirection *float64 `json:"ideal_wave_direction,omitempty"`
	IdealWavePeriod    *float64 `json:"ideal_wave_period,omitempty"`

	IdealWindSpeed     *float64 `json:"ideal_wind_speed,omitempty"`
	MaxWindSpeed       *float64 `json:"max_wind_speed,omitempty"`
	IdealWindDirection *float64 `json:"ideal_wind_direction,omitempty"`

	IdealTideHeight *float64 `json:"ideal_tide_height,omitempty"`
	IdealTideType   *string  `json:"ideal_tide_type,omitempty"`

	IdealWaterTemperature *float64 `json:"ideal_water_temperature,omitempty"`
	IdealAirTemperature   *float64 `json:"ideal_air_temperature,omitempty"`

	IdealCurrentSpeed *float64 `json:"ideal_current_speed,omitempty"`

	IsActive bool `json:"is_active"`
}
