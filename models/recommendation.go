package models

import (
	"time"

	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// Day selection types accepted in a RecommendationRequest.
const (
	DaySelectionWeekdays = "weekdays"
	DaySelectionOffsets  = "offsets"
)

// DaySelection addresses forecast days either as explicit offsets from
// today (0 = today) or as weekdays (0 = Sunday .. 6 = Saturday) to be
// translated into offsets.
type DaySelection struct {
	Type   string `json:"type"`
	Values []int  `json:"values"`
}

// TimeWindow is an inclusive time-of-day window, "HH:MM".
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RecommendationRequest is the body of POST /v1/recommendations.
type RecommendationRequest struct {
	UserID       string       `json:"user_id"`
	SpotIDs      []int64      `json:"spot_ids"`
	DaySelection DaySelection `json:"day_selection"`
	TimeWindow   TimeWindow   `json:"time_window"`
	Limit        *int         `json:"limit,omitempty"`
}

// ScoreBreakdown holds the per-factor sub-scores and the overall
// suitability score for one forecast hour. Wave and wind range over
// [-100, 100]; tide, temperatures and current over [0, 100]; the
// overall score over [0, 100] except when the wave veto fires, in
// which case the negative wave score is passed through verbatim.
type ScoreBreakdown struct {
	WaveScore             float64 `json:"wave_score"`
	WindScore             float64 `json:"wind_score"`
	TideScore             float64 `json:"tide_score"`
	WaterTemperatureScore float64 `json:"water_temperature_score"`
	AirTemperatureScore   float64 `json:"air_temperature_score"`
	CurrentScore          float64 `json:"current_score"`
	OverallScore          float64 `json:"overall_score"`
}

// SpotDailySummary is the best session found for one spot on one day.
type SpotDailySummary struct {
	SpotID      int64           `json:"spot_id"`
	SpotName    string          `json:"spot_name"`
	BestHourUTC time.Time       `json:"best_hour_utc"`
	Scores      ScoreBreakdown  `json:"scores"`
	Conditions  forecast.Sample `json:"forecast_conditions"`
}

// DailyRecommendation is one calendar date with its spots ranked
// descending by best overall score.
type DailyRecommendation struct {
	Date        string             `json:"date"`
	RankedSpots []SpotDailySummary `json:"ranked_spots"`
}
