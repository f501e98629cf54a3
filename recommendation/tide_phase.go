package recommendation

import (
	"sort"
	"time"

	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// ResolvePhase derives the qualitative tide state at t from the spot's
// extreme events. It is a pure lookup invoked once per (spot, hour),
// not a running state machine.
//
// States, in priority order: an exact timestamp match returns that
// extreme's type; a preceding and a following extreme of differing
// types give "rising" (low to high) or "falling" (high to low); only a
// preceding extreme gives "after_<type>"; only a following one gives
// "before_<type>"; no extremes at all give "unknown".
func ResolvePhase(t time.Time, extremes []forecast.ExtremeEvent) forecast.TidePhase {
	if len(extremes) == 0 {
		return forecast.TidePhaseUnknown
	}

	sorted := make([]forecast.ExtremeEvent, len(extremes))
	copy(sorted, extremes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TimestampUTC.Before(sorted[j].TimestampUTC)
	})

	var previous, next *forecast.ExtremeEvent
	for i := range sorted {
		e := &sorted[i]
		if e.TimestampUTC.Equal(t) {
			return extremePhase(e.Type)
		}
		if e.TimestampUTC.Before(t) {
			previous = e
		} else {
			next = e
			break
		}
	}

	switch {
	case previous != nil && next != nil:
		if previous.Type == forecast.TideEventLow && next.Type == forecast.TideEventHigh {
			return forecast.TidePhaseRising
		}
		if previous.Type == forecast.TideEventHigh && next.Type == forecast.TideEventLow {
			return forecast.TidePhaseFalling
		}
		// Two consecutive extremes of the same type is a provider data
		// glitch; fall back to the preceding one.
		return afterPhase(previous.Type)
	case previous != nil:
		return afterPhase(previous.Type)
	case next != nil:
		return beforePhase(next.Type)
	}
	return forecast.TidePhaseUnknown
}

func extremePhase(t forecast.TideEventType) forecast.TidePhase {
	if t == forecast.TideEventHigh {
		return forecast.TidePhaseHigh
	}
	return forecast.TidePhaseLow
}

func afterPhase(t forecast.TideEventType) forecast.TidePhase {
	if t == forecast.TideEventHigh {
		return forecast.TidePhaseAfterHigh
	}
	return forecast.TidePhaseAfterLow
}

func beforePhase(t forecast.TideEventType) forecast.TidePhase {
	if t == forecast.TideEventHigh {
		return forecast.TidePhaseBeforeHigh
	}
	return forecast.TidePhaseBeforeLow
}
