package recommendation

import (
	"testing"

	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

func f64(v float64) *float64 { return &v }

func TestGenericProfile_IsSynthesized(t *testing.T) {
	profile := GenericProfile(models.LevelIntermediario)
	if profile.PreferenceID != 0 {
		t.Errorf("Expected synthesized profile to carry id 0, got %d", profile.PreferenceID)
	}
	if profile.IsActive {
		t.Error("Expected synthesized profile to be inactive")
	}
	if profile.Provenance != ProvenanceGenericLevelDefault {
		t.Errorf("Expected generic provenance, got %q", profile.Provenance)
	}
}

func TestGenericProfile_UnknownLevelFallsBack(t *testing.T) {
	unknown := GenericProfile(models.SurfLevel("kook"))
	fallback := GenericProfile(models.DefaultSurfLevel)
	unknown.Provenance = fallback.Provenance
	if unknown != fallback {
		t.Error("Expected unknown level to resolve to the default level profile")
	}
}

func TestGenericProfile_CoversEveryScoredFactor(t *testing.T) {
	for _, level := range []models.SurfLevel{
		models.LevelIniciante,
		models.LevelMaroleiro,
		models.LevelIntermediario,
		models.LevelPro,
	} {
		profile := GenericProfile(level)
		if profile.MinWaveHeight <= 0 || profile.IdealWaveHeight <= 0 || profile.MaxWaveHeight <= 0 {
			t.Errorf("Expected complete wave bounds for level %q", level)
		}
		if profile.MaxWindSpeed <= 0 || profile.IdealWavePeriod <= 0 {
			t.Errorf("Expected wind and period defaults for level %q", level)
		}
		if profile.IdealTideType != forecast.TideFlowAny {
			t.Errorf("Expected generic tide flow %q for level %q, got %q", forecast.TideFlowAny, level, profile.IdealTideType)
		}
		if profile.IdealWaterTemperature <= 0 || profile.IdealAirTemperature <= 0 {
			t.Errorf("Expected temperature defaults for level %q", level)
		}
	}
}

func TestResolve_NoRecordsReturnsGenericFloor(t *testing.T) {
	profile := Resolve(nil, nil, models.LevelPro)
	if profile != GenericProfile(models.LevelPro) {
		t.Error("Expected the generic floor when both tiers are missing")
	}
}

func TestResolve_SpotLevelOverlaysOnlySetFields(t *testing.T) {
	spotPref := &models.Preference{
		SpotID:          4,
		IdealWaveHeight: f64(1.8),
		IdealTideType:   strPtr("rising"),
	}
	profile := Resolve(nil, spotPref, models.LevelIntermediario)
	generic := GenericProfile(models.LevelIntermediario)

	if profile.IdealWaveHeight != 1.8 {
		t.Errorf("Expected overlayed wave height 1.8, got %v", profile.IdealWaveHeight)
	}
	if profile.IdealTideType != "rising" {
		t.Errorf("Expected overlayed tide flow, got %q", profile.IdealTideType)
	}
	if profile.MaxWindSpeed != generic.MaxWindSpeed {
		t.Error("Expected unset fields to keep the generic floor")
	}
	if profile.Provenance != ProvenanceSpotLevelDefault {
		t.Errorf("Expected spot-level provenance, got %q", profile.Provenance)
	}
	if profile.IsActive || profile.PreferenceID != 0 {
		t.Error("Expected spot-level tier to stay synthesized")
	}
}

func TestResolve_ActiveUserRecordWinsVerbatim(t *testing.T) {
	spotPref := &models.Preference{SpotID: 4, IdealWaveHeight: f64(1.8)}
	userPref := &models.Preference{
		PreferenceID:    91,
		UserID:          "u-1",
		SpotID:          4,
		IdealWaveHeight: f64(0.9),
		MaxWindSpeed:    f64(10),
		IsActive:        true,
	}
	profile := Resolve(userPref, spotPref, models.LevelIntermediario)

	if profile.IdealWaveHeight != 0.9 {
		t.Errorf("Expected user value to win over spot default, got %v", profile.IdealWaveHeight)
	}
	if profile.MaxWindSpeed != 10 {
		t.Errorf("Expected user wind ceiling, got %v", profile.MaxWindSpeed)
	}
	if profile.PreferenceID != 91 || !profile.IsActive {
		t.Error("Expected the resolved profile to carry the user record identity")
	}
	if profile.Provenance != ProvenanceUserCustom {
		t.Errorf("Expected user-custom provenance, got %q", profile.Provenance)
	}
}

func TestResolve_InactiveUserRecordIsIgnored(t *testing.T) {
	userPref := &models.Preference{
		PreferenceID:    91,
		IdealWaveHeight: f64(0.9),
		IsActive:        false,
	}
	profile := Resolve(userPref, nil, models.LevelIntermediario)
	if profile.IdealWaveHeight != GenericProfile(models.LevelIntermediario).IdealWaveHeight {
		t.Error("Expected an inactive record to be skipped")
	}
	if profile.Provenance != ProvenanceGenericLevelDefault {
		t.Errorf("Expected generic provenance, got %q", profile.Provenance)
	}
}

func TestIdealSwellPeriod(t *testing.T) {
	if p := IdealSwellPeriod(models.LevelPro); p != 15 {
		t.Errorf("Expected 15s for pro, got %v", p)
	}
	if p := IdealSwellPeriod(models.SurfLevel("kook")); p != IdealSwellPeriod(models.DefaultSurfLevel) {
		t.Errorf("Expected fallback to the default level, got %v", p)
	}
}

func strPtr(s string) *string { return &s }
