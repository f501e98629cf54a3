package recommendation

import "math"

// currentDecayScale is the reference current speed for the decay
// curve: at 0.5 m/s past the ideal the score has dropped to ~36.8.
const currentDecayScale = 0.5

// CurrentScore rates the current strength, in [0, 100]. The ideal is
// typically zero: no meaningful current. Direction is not a factor,
// only magnitude.
func CurrentScore(speed, idealSpeed float64) float64 {
	diff := math.Abs(speed - idealSpeed)
	score := math.Exp(-diff / currentDecayScale)
	return round2(clamp(score, 0, 1) * 100)
}
