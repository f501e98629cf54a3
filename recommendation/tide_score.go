package recommendation

import (
	"math"

	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// tideFlowMismatchPenalty is applied when the current tide phase does
// not match the preferred flow type.
const tideFlowMismatchPenalty = 0.8

// TideScore rates the tide for one hour, in [0, 100].
//
// The height component is a Gaussian on the deviation from the ideal
// height, with the curve width scaled by the ideal height itself: a
// spot that works on a 1.2m tide is more tolerant than one needing
// 0.3m. A non-positive ideal height gets a small fixed width instead
// of dividing by zero. If the preferred flow type is set (and not
// "any") and the resolved phase does not match it, the score is
// multiplied by 0.8. An unknown phase skips the flow penalty, since
// there is nothing to compare against.
func TideScore(seaLevel, idealHeight float64, phase forecast.TidePhase, idealFlow string) float64 {
	width := idealHeight
	if idealHeight <= 0 {
		width = 0.1
	}
	d := seaLevel - idealHeight
	score := math.Exp(-(d * d) / width)

	if idealFlow != "" && idealFlow != forecast.TideFlowAny &&
		phase != forecast.TidePhaseUnknown && string(phase) != idealFlow {
		score *= tideFlowMismatchPenalty
	}

	return round2(clamp(score, 0, 1) * 100)
}
