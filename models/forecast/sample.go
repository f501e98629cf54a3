package forecast

import "time"

// Sample holds one hour of environmental forecast data for a spot.
// All scalar fields are optional: the provider regularly omits
// parameters for spots outside a model's coverage, so absent values
// stay nil instead of defaulting to zero.
type Sample struct {
	TimestampUTC time.Time `json:"timestamp_utc"`

	WaveHeight    *float64 `json:"wave_height_sg,omitempty"`
	WaveDirection *float64 `json:"wave_direction_sg,omitempty"`
	WavePeriod    *float64 `json:"wave_period_sg,omitempty"`

	SwellHeight    *float64 `json:"swell_height_sg,omitempty"`
	SwellDirection *float64 `json:"swell_direction_sg,omitempty"`
	SwellPeriod    *float64 `json:"swell_period_sg,omitempty"`

	SecondarySwellHeight    *float64 `json:"secondary_swell_height_sg,omitempty"`
	SecondarySwellDirection *float64 `json:"secondary_swell_direction_sg,omitempty"`
	SecondarySwellPeriod    *float64 `json:"secondary_swell_period_sg,omitempty"`

	WindSpeed     *float64 `json:"wind_speed_sg,omitempty"`
	WindDirection *float64 `json:"wind_direction_sg,omitempty"`

	WaterTemperature *float64 `json:"water_temperature_sg,omitempty"`
	AirTemperature   *float64 `json:"air_temperature_sg,omitempty"`

	CurrentSpeed     *float64 `json:"current_speed_sg,omitempty"`
	CurrentDirection *float64 `json:"current_direction_sg,omitempty"`

	SeaLevel *float64 `json:"sea_level_sg,omitempty"`

	// TideType is the label attached during ingestion, when known.
	TideType string `json:"tide_type,omitempty"`
}
