package recommendation

// offshoreToleranceDegrees is how far off the ideal wind direction
// still counts as offshore.
const offshoreToleranceDegrees = 45

// WindScore rates the wind for one hour, in [-100, 100].
//
// Two regimes, split by direction relative to the ideal (offshore)
// direction within 45 degrees:
//
//   - offshore: 75 rising to 100 at the ideal speed, then falling to 0
//     at the max speed; past max, a linear decay reaching -100 at 1.5x
//     the max speed (a blown-out terral is still surfable longer);
//   - onshore/cross: 75 falling straight to 0 at the max speed; past
//     max, the decay reaches -100 already at 1.2x the max speed.
//
// Calm wind always scores 75 regardless of direction.
func WindScore(speed, direction, idealDirection, idealSpeed, maxSpeed float64) float64 {
	if speed == 0 {
		return 75
	}

	offshore := angularDiff(direction, idealDirection) <= offshoreToleranceDegrees

	var score float64
	if speed <= maxSpeed {
		if offshore {
			if speed <= idealSpeed {
				if idealSpeed > 0 {
					score = 75 + (speed/idealSpeed)*25
				}
			} else if maxSpeed > idealSpeed {
				f := (speed - idealSpeed) / (maxSpeed - idealSpeed)
				score = 100 - 100*f
			}
		} else if maxSpeed > 0 {
			score = 75 - (speed/maxSpeed)*75
		}
	} else {
		blowout := 1.2
		if offshore {
			blowout = 1.5
		}
		denom := maxSpeed*blowout - maxSpeed
		if denom > 0 {
			f := (speed - maxSpeed) / denom
			score = -100 * f
		}
	}

	return round2(clamp(score, -100, 100))
}
