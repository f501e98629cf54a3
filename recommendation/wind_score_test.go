package recommendation

import "testing"

func TestWindScore_CalmAlwaysNeutral(t *testing.T) {
	// Zero wind scores 75 no matter the direction.
	if score := WindScore(0, 0, 0, 5, 20); score != 75 {
		t.Errorf("Expected 75 for calm offshore, got %v", score)
	}
	if score := WindScore(0, 180, 0, 5, 20); score != 75 {
		t.Errorf("Expected 75 for calm onshore, got %v", score)
	}
}

func TestWindScore_OffshorePeakAtIdealSpeed(t *testing.T) {
	if score := WindScore(5, 0, 0, 5, 20); score != 100 {
		t.Errorf("Expected 100 at ideal offshore speed, got %v", score)
	}
	// Within the 45 degree tolerance still counts as offshore.
	if score := WindScore(5, 44, 0, 5, 20); score != 100 {
		t.Errorf("Expected 100 within offshore tolerance, got %v", score)
	}
}

func TestWindScore_OffshoreFallsToZeroAtMax(t *testing.T) {
	if score := WindScore(20, 0, 0, 5, 20); score != 0 {
		t.Errorf("Expected 0 at max offshore speed, got %v", score)
	}
	mid := WindScore(12.5, 0, 0, 5, 20)
	if mid != 50 {
		t.Errorf("Expected 50 halfway between ideal and max, got %v", mid)
	}
}

func TestWindScore_OnshoreRegime(t *testing.T) {
	// Onshore falls linearly 75 -> 0 up to max speed.
	if score := WindScore(10, 180, 0, 5, 20); score != 37.5 {
		t.Errorf("Expected 37.5 for half-max onshore, got %v", score)
	}
	if score := WindScore(20, 180, 0, 5, 20); score != 0 {
		t.Errorf("Expected 0 at max onshore speed, got %v", score)
	}
}

func TestWindScore_BeyondMaxDecaysNegative(t *testing.T) {
	// Offshore reaches -100 at 1.5x max.
	if score := WindScore(30, 0, 0, 5, 20); score != -100 {
		t.Errorf("Expected -100 at 1.5x max offshore, got %v", score)
	}
	// Onshore is steeper: -100 already at 1.2x max.
	if score := WindScore(24, 180, 0, 5, 20); score != -100 {
		t.Errorf("Expected -100 at 1.2x max onshore, got %v", score)
	}
	// Onshore over-max penalty outpaces offshore at the same speed.
	offshore := WindScore(22, 0, 0, 5, 20)
	onshore := WindScore(22, 180, 0, 5, 20)
	if onshore >= offshore {
		t.Errorf("Expected onshore blowout to score worse: %v >= %v", onshore, offshore)
	}
}

func TestWindScore_ClampedAtMinusHundred(t *testing.T) {
	if score := WindScore(100, 180, 0, 5, 20); score != -100 {
		t.Errorf("Expected clamp at -100, got %v", score)
	}
}
