package recommendation

import "math"

// Decay rates for the temperature comfort curves. Air tolerates a
// wider deviation than water: at 5 degrees off, water scores ~13.5
// while air still scores ~36.8.
const (
	waterTempDecayRate = 0.08
	airTempDecayRate   = 0.04
)

// WaterTemperatureScore rates the water temperature, in [0, 100].
func WaterTemperatureScore(waterTemp, idealTemp float64) float64 {
	return temperatureScore(waterTemp, idealTemp, waterTempDecayRate)
}

// AirTemperatureScore rates the air temperature, in [0, 100].
func AirTemperatureScore(airTemp, idealTemp float64) float64 {
	return temperatureScore(airTemp, idealTemp, airTempDecayRate)
}

func temperatureScore(temp, ideal, decayRate float64) float64 {
	diff := math.Abs(temp - ideal)
	score := math.Exp(-decayRate * diff * diff)
	return round2(clamp(score, 0, 1) * 100)
}
