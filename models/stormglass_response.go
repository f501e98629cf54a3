package models

// SourceValue wraps a single parameter value from the weather provider.
// Only the "sg" (merged) source is consumed.
type SourceValue struct {
	SG *float64 `json:"sg,omitempty"`
}

// WeatherHour is one hour from GET /v2/weather/point.
type WeatherHour struct {
	Time string `json:"time"`

	WaveHeight    *SourceValue `json:"waveHeight,omitempty"`
	WaveDirection *SourceValue `json:"waveDirection,omitempty"`
	WavePeriod    *SourceValue `json:"wavePeriod,omitempty"`

	SwellHeight    *SourceValue `json:"swellHeight,omitempty"`
	SwellDirection *SourceValue `json:"swellDirection,omitempty"`
	SwellPeriod    *SourceValue `json:"swellPeriod,omitempty"`

	SecondarySwellHeight    *SourceValue `json:"secondarySwellHeight,omitempty"`
	SecondarySwellDirection *SourceValue `json:"secondarySwellDirection,omitempty"`
	SecondarySwellPeriod    *SourceValue `json:"secondarySwellPeriod,omitempty"`

	WindSpeed     *SourceValue `json:"windSpeed,omitempty"`
	WindDirection *SourceValue `json:"windDirection,omitempty"`

	WaterTemperature *SourceValue `json:"waterTemperature,omitempty"`
	AirTemperature   *SourceValue `json:"airTemperature,omitempty"`

	CurrentSpeed     *SourceValue `json:"currentSpeed,omitempty"`
	CurrentDirection *SourceValue `json:"currentDirection,omitempty"`

	SeaLevel *SourceValue `json:"seaLevel,omitempty"`
}

// WeatherPointResponse is the top-level JSON returned by
// GET /v2/weather/point.
type WeatherPointResponse struct {
	Hours []WeatherHour    `json:"hours"`
	Meta  WeatherPointMeta `json:"meta"`
}

type WeatherPointMeta struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RequestCount int     `json:"requestCount"`
	DailyQuota   int     `json:"dailyQuota"`
}

// TideExtremePoint is one extreme from GET /v2/tide/extremes/point.
type TideExtremePoint struct {
	Time   string  `json:"time"`
	Height float64 `json:"height"`
	Type   string  `json:"type"`
}

// TideExtremesResponse is the top-level JSON returned by
// GET /v2/tide/extremes/point.
type TideExtremesResponse struct {
	Data []TideExtremePoint `json:"data"`
	Meta TideExtremesMeta   `json:"meta"`
}

type TideExtremesMeta struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Station string  `json:"station,omitempty"`
	Datum   string  `json:"datum,omitempty"`
}
