package recommendation

import (
	"testing"
	"time"

	"github.com/Bryanads/thecheckAPI/models/forecast"
)

func tideExtremesFixture() []forecast.ExtremeEvent {
	return []forecast.ExtremeEvent{
		{TimestampUTC: time.Date(2025, 1, 1, 4, 0, 0, 0, time.UTC), Type: forecast.TideEventLow, Height: 0.2},
		{TimestampUTC: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), Type: forecast.TideEventHigh, Height: 1.4},
		{TimestampUTC: time.Date(2025, 1, 1, 16, 0, 0, 0, time.UTC), Type: forecast.TideEventLow, Height: 0.3},
	}
}

func TestResolvePhase_Rising(t *testing.T) {
	probe := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, tideExtremesFixture()); phase != forecast.TidePhaseRising {
		t.Errorf("Expected rising between low and high, got %q", phase)
	}
}

func TestResolvePhase_Falling(t *testing.T) {
	probe := time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, tideExtremesFixture()); phase != forecast.TidePhaseFalling {
		t.Errorf("Expected falling between high and low, got %q", phase)
	}
}

func TestResolvePhase_ExactExtremeMatch(t *testing.T) {
	extremes := tideExtremesFixture()
	if phase := ResolvePhase(extremes[1].TimestampUTC, extremes); phase != forecast.TidePhaseHigh {
		t.Errorf("Expected high at the exact extreme timestamp, got %q", phase)
	}
	if phase := ResolvePhase(extremes[0].TimestampUTC, extremes); phase != forecast.TidePhaseLow {
		t.Errorf("Expected low at the exact extreme timestamp, got %q", phase)
	}
}

func TestResolvePhase_BeforeFirstExtreme(t *testing.T) {
	probe := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, tideExtremesFixture()); phase != forecast.TidePhaseBeforeLow {
		t.Errorf("Expected before_low ahead of the first extreme, got %q", phase)
	}
}

func TestResolvePhase_AfterLastExtreme(t *testing.T) {
	probe := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, tideExtremesFixture()); phase != forecast.TidePhaseAfterLow {
		t.Errorf("Expected after_low past the last extreme, got %q", phase)
	}
}

func TestResolvePhase_NoExtremes(t *testing.T) {
	probe := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, nil); phase != forecast.TidePhaseUnknown {
		t.Errorf("Expected unknown without extremes, got %q", phase)
	}
}

func TestResolvePhase_UnsortedInputAndSameTypeGlitch(t *testing.T) {
	extremes := []forecast.ExtremeEvent{
		{TimestampUTC: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), Type: forecast.TideEventHigh, Height: 1.4},
		{TimestampUTC: time.Date(2025, 1, 1, 4, 0, 0, 0, time.UTC), Type: forecast.TideEventHigh, Height: 1.3},
	}
	probe := time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)
	if phase := ResolvePhase(probe, extremes); phase != forecast.TidePhaseAfterHigh {
		t.Errorf("Expected after_high for consecutive highs, got %q", phase)
	}
}
