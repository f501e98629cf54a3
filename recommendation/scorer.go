package recommendation

import (
	"math"

	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
	"github.com/Bryanads/thecheckAPI/models/spot"
)

// WaveFormula selects how the wave composite is computed.
type WaveFormula int

const (
	// WaveFormulaFull uses min/ideal/max heights with the secondary
	// swell modifier, floored at -100 (the veto range).
	WaveFormulaFull WaveFormula = iota
	// WaveFormulaSimple scores the primary swell against ideal/max
	// heights with a level-based ideal period and the spot's ideal
	// swell directions, floored at 0.
	WaveFormulaSimple
)

// WeightScheme selects the overall weighting convention.
type WeightScheme int

const (
	// WeightsWithCurrent: wave .50, wind .25, tide .15, current .05,
	// water temp .03, air temp .02.
	WeightsWithCurrent WeightScheme = iota
	// WeightsNoCurrent: wave .50, wind .33, tide .15, air temp .01,
	// water temp .01.
	WeightsNoCurrent
)

// Policy fixes the scoring conventions for a deployment. Both open
// product choices live here; a given Policy applies one of each
// uniformly.
type Policy struct {
	WaveFormula WaveFormula
	Weights     WeightScheme
}

// DefaultPolicy is the richer formulation: the full wave composite and
// the weighting that includes the current term.
var DefaultPolicy = Policy{WaveFormula: WaveFormulaFull, Weights: WeightsWithCurrent}

// ScoreHour computes the full score breakdown for one forecast hour.
// It never errors: absent sample fields score their factor 0, and a
// sample missing the essential wave fields scores the hour as
// unsurfable while the call still completes.
//
// The wave veto applies before weighting: a negative wave score is the
// hour's overall score verbatim, with every other factor ignored.
func ScoreHour(
	policy Policy,
	sample forecast.Sample,
	profile Profile,
	spotAttrs *spot.Spot,
	tidePhase forecast.TidePhase,
	level models.SurfLevel,
) models.ScoreBreakdown {
	var bd models.ScoreBreakdown

	bd.WaveScore = waveFactorScore(policy.WaveFormula, sample, profile, spotAttrs, level)
	if bd.WaveScore < 0 {
		bd.OverallScore = bd.WaveScore
		return bd
	}

	if sample.WindSpeed != nil && sample.WindDirection != nil {
		bd.WindScore = WindScore(
			*sample.WindSpeed, *sample.WindDirection,
			profile.IdealWindDirection, profile.IdealWindSpeed, profile.MaxWindSpeed,
		)
	}

	if sample.SeaLevel != nil {
		bd.TideScore = TideScore(*sample.SeaLevel, profile.IdealTideHeight, tidePhase, profile.IdealTideType)
	}

	if sample.WaterTemperature != nil {
		bd.WaterTemperatureScore = WaterTemperatureScore(*sample.WaterTemperature, profile.IdealWaterTemperature)
	}
	if sample.AirTemperature != nil {
		bd.AirTemperatureScore = AirTemperatureScore(*sample.AirTemperature, profile.IdealAirTemperature)
	}
	if sample.CurrentSpeed != nil {
		bd.CurrentScore = CurrentScore(*sample.CurrentSpeed, profile.IdealCurrentSpeed)
	}

	var overall float64
	switch policy.Weights {
	case WeightsNoCurrent:
		overall = bd.WaveScore*0.50 +
			bd.WindScore*0.33 +
			bd.TideScore*0.15 +
			bd.AirTemperatureScore*0.01 +
			bd.WaterTemperatureScore*0.01
	default:
		overall = bd.WaveScore*0.50 +
			bd.WindScore*0.25 +
			bd.TideScore*0.15 +
			bd.CurrentScore*0.05 +
			bd.WaterTemperatureScore*0.03 +
			bd.AirTemperatureScore*0.02
	}

	bd.OverallScore = round2(clamp(overall, 0, 100))
	return bd
}

// ScoreHours maps ScoreHour over a batch of samples, resolving the
// tide phase per sample from the spot's extremes. The scalar contract
// stays the unit of meaning; this wrapper only exists so callers can
// score a day in one call.
func ScoreHours(
	policy Policy,
	samples []forecast.Sample,
	profile Profile,
	spotAttrs *spot.Spot,
	extremes []forecast.ExtremeEvent,
	level models.SurfLevel,
) []models.ScoreBreakdown {
	out := make([]models.ScoreBreakdown, len(samples))
	for i, s := range samples {
		phase := ResolvePhase(s.TimestampUTC, extremes)
		out[i] = ScoreHour(policy, s, profile, spotAttrs, phase, level)
	}
	return out
}

func waveFactorScore(
	formula WaveFormula,
	sample forecast.Sample,
	profile Profile,
	spotAttrs *spot.Spot,
	level models.SurfLevel,
) float64 {
	if formula == WaveFormulaSimple {
		return simpleWaveScore(sample, profile, spotAttrs, level)
	}

	if sample.WaveHeight == nil || sample.WaveDirection == nil || sample.WavePeriod == nil {
		return 0
	}

	var secHeight, secDirection, secPeriod float64
	if sample.SecondarySwellHeight != nil {
		secHeight = *sample.SecondarySwellHeight
	}
	if sample.SecondarySwellDirection != nil {
		secDirection = *sample.SecondarySwellDirection
	}
	if sample.SecondarySwellPeriod != nil {
		secPeriod = *sample.SecondarySwellPeriod
	}

	return WaveScore(
		*sample.WaveHeight, *sample.WaveDirection, *sample.WavePeriod,
		profile.MinWaveHeight, profile.IdealWaveHeight, profile.MaxWaveHeight,
		profile.IdealWaveDirection, profile.IdealWavePeriod,
		secHeight, secDirection, secPeriod,
	)
}

// simpleWaveScore is the alternate wave policy: primary swell fields
// only, size 0.70 / period 0.15 / direction 0.15, floored at 0.
func simpleWaveScore(sample forecast.Sample, profile Profile, spotAttrs *spot.Spot, level models.SurfLevel) float64 {
	height := floatOrZero(sample.SwellHeight)
	period := floatOrZero(sample.SwellPeriod)
	direction := floatOrZero(sample.SwellDirection)

	sizeScore := simpleSwellSizeScore(height, profile.IdealWaveHeight, profile.MaxWaveHeight)
	if sizeScore < 0 {
		return 0
	}

	idealPeriod := IdealSwellPeriod(level)
	periodScore := WavePeriodScore(period, idealPeriod)

	var idealDirections []float64
	if spotAttrs != nil {
		idealDirections = spotAttrs.IdealSwellDirection
	}
	directionScore := multiDirectionScore(direction, idealDirections)

	base := sizeScore*0.70 + periodScore*0.15 + directionScore*0.15
	return round2(clamp(base, 0, 100))
}

func simpleSwellSizeScore(height, ideal, max float64) float64 {
	if height > max {
		return -100
	}
	if height < ideal*0.3 {
		return 0
	}
	if height <= ideal {
		if ideal <= 0 {
			return 0
		}
		return 100 * (height / ideal)
	}
	rangeSize := max - ideal
	if rangeSize <= 0 {
		return 0
	}
	return 100 * (1 - (height-ideal)/rangeSize)
}

// multiDirectionScore decays with the smallest circular distance to
// any of the spot's ideal directions; with none configured the factor
// is neutral.
func multiDirectionScore(direction float64, ideals []float64) float64 {
	if len(ideals) == 0 {
		return 50
	}
	minDiff := 360.0
	for _, ideal := range ideals {
		minDiff = math.Min(minDiff, angularDiff(direction, ideal))
	}
	score := math.Exp(-(minDiff * minDiff) / (45 * 45))
	return round2(score * 100)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
