package forecast

import "time"

// TideEventType is the kind of a recorded tide extreme.
type TideEventType string

const (
	TideEventLow  TideEventType = "low"
	TideEventHigh TideEventType = "high"
)

// ExtremeEvent is one local minimum or maximum of the tide curve for a
// spot, as delivered by the tide provider. Events are ordered by
// timestamp within a spot.
type ExtremeEvent struct {
	TimestampUTC time.Time     `json:"timestamp_utc"`
	Type         TideEventType `json:"type"`
	Height       float64       `json:"height"`
}

// TidePhase is the qualitative tide state at a point in time, derived
// from the surrounding extremes.
type TidePhase string

const (
	TidePhaseLow        TidePhase = "low"
	TidePhaseHigh       TidePhase = "high"
	TidePhaseRising     TidePhase = "rising"
	TidePhaseFalling    TidePhase = "falling"
	TidePhaseAfterLow   TidePhase = "after_low"
	TidePhaseAfterHigh  TidePhase = "after_high"
	TidePhaseBeforeLow  TidePhase = "before_low"
	TidePhaseBeforeHigh TidePhase = "before_high"
	TidePhaseUnknown    TidePhase = "unknown"
)

// TideFlowAny is the preference value that accepts every tide phase.
const TideFlowAny = "any"
