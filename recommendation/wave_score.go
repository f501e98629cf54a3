package recommendation

import "math"

// Wave base score weights (full formula). Size dominates, then period,
// then direction.
const (
	waveSizeWeight      = 0.50
	wavePeriodWeight    = 0.30
	waveDirectionWeight = 0.20
)

// WaveSizeScore scores the forecast wave height against the rider's
// min/ideal/max heights. Piecewise, in [-100, 100]:
//
//   - below min: quadratic penalty growing with the distance to min,
//     reaching -100 for a flat sea;
//   - min to ideal: sine ramp (exponent 1.5 steepens the initial rise)
//     from 0 up to 100;
//   - ideal to max: cosine fall from 100 back to 0;
//   - above max: linear penalty with slope -2/(max-ideal), floored at
//     -100. When max == ideal any bigger wave takes the full penalty.
func WaveSizeScore(height, min, ideal, max float64) float64 {
	var score float64
	switch {
	case height < min:
		if min > 0 {
			r := (min - height) / min
			score = -(r * r)
		}
	case height <= ideal:
		if ideal > min {
			f := (height - min) / (ideal - min)
			score = math.Pow(math.Sin(f*math.Pi/2), 1.5)
		} else {
			// min == ideal: the only height in this branch is the
			// ideal itself.
			score = 1
		}
	case height <= max:
		if max > ideal {
			f := (height - ideal) / (max - ideal)
			score = math.Cos(f * math.Pi / 2)
		}
	default: // height > max
		if max > ideal {
			slope := -2.0 / (max - ideal)
			score = math.Max(-1.0, slope*(height-max))
		} else if max >= 0 {
			score = -1.0
		}
	}
	return round2(score * 100)
}

// WaveDirectionScore decays with the circular distance from the ideal
// direction; 45 degrees off costs roughly a factor of e.
func WaveDirectionScore(direction, ideal float64) float64 {
	diff := angularDiff(direction, ideal)
	score := math.Exp(-(diff * diff) / (45 * 45))
	return round2(score * 100)
}

// WavePeriodScore decays symmetrically around the ideal period; the
// ideal period itself widens the curve, so long-period preferences
// tolerate more deviation.
func WavePeriodScore(period, ideal float64) float64 {
	denom := ideal + 1e-6
	if denom <= 0 {
		denom = 1e-6
	}
	d := period - ideal
	score := math.Exp(-(d * d) / denom)
	return round2(score * 100)
}

// SecondarySwellInfluence rates the interaction between the secondary
// and primary swell as a signed factor in [-1, 1]. Direction alignment
// dominates; size ratio and period ratio refine it. A crossing swell
// past 90 degrees takes the maximum direction penalty, and a secondary
// swell bigger than 1.2x the primary flips its size contribution
// negative.
func SecondarySwellInfluence(secHeight, secPeriod, secDirection, height, period, direction float64) float64 {
	dirDiff := angularDiff(secDirection, direction)
	var dirScore float64
	if dirDiff > 90 {
		dirScore = -1.0
	} else {
		dirScore = math.Cos(dirDiff * math.Pi / 180)
	}

	if height == 0 {
		return 0
	}
	sizeRatio := secHeight / height
	// Gaussian centered at 45% of the primary height, width 0.5.
	sizeScore := math.Exp(-((sizeRatio - 0.45) * (sizeRatio - 0.45)) / 0.25)
	if sizeRatio > 1.2 {
		sizeScore *= -1 * (sizeRatio - 1.2)
	}

	if period == 0 {
		return 0
	}
	periodRatio := secPeriod / period
	// Gaussian centered at equal periods, width 0.8.
	periodScore := math.Exp(-((periodRatio - 1.0) * (periodRatio - 1.0)) / 0.64)

	influence := dirScore*0.60 + sizeScore*0.20 + periodScore*0.20
	return clamp(influence, -1.0, 1.0)
}

// WaveScore is the consolidated sea-state score for one hour.
//
// The size score is the veto gate: when it is negative the surf is not
// rideable and the size score alone is returned, ignoring every other
// factor. Otherwise size, period and direction combine into a weighted
// base, and a present secondary swell scales it: a favorable secondary
// grants up to +10%, an unfavorable one costs up to -20%.
func WaveScore(
	height, direction, period float64,
	minHeight, idealHeight, maxHeight, idealDirection, idealPeriod float64,
	secHeight, secDirection, secPeriod float64,
) float64 {
	sizeScore := WaveSizeScore(height, minHeight, idealHeight, maxHeight)
	if sizeScore < 0 {
		return sizeScore
	}

	directionScore := WaveDirectionScore(direction, idealDirection)
	periodScore := WavePeriodScore(period, idealPeriod)

	base := sizeScore*waveSizeWeight +
		periodScore*wavePeriodWeight +
		directionScore*waveDirectionWeight

	final := base
	if secHeight > 0 && secPeriod > 0 {
		influence := SecondarySwellInfluence(
			secHeight, secPeriod, secDirection,
			height, period, direction,
		)
		var modifier float64
		if influence > 0 {
			modifier = influence * 0.10
		} else {
			modifier = influence * 0.20
		}
		final = base * (1 + modifier)
	}

	return round2(clamp(final, -100, 100))
}
