package recommendation

import (
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// Provenance records which tier of the hierarchy produced a resolved
// profile.
type Provenance string

const (
	ProvenanceUserCustom          Provenance = "user-custom"
	ProvenanceSpotLevelDefault    Provenance = "spot-level-default"
	ProvenanceGenericLevelDefault Provenance = "generic-level-default"
)

// Profile is a fully resolved preference set for one (user, spot)
// scoring request. Unlike a stored models.Preference, every field is
// populated: the hierarchy never returns partial data. A synthesized
// profile (anything below the user-custom tier) carries PreferenceID 0
// and IsActive false so callers can tell it apart from a real record.
type Profile struct {
	PreferenceID int64

	MinWaveHeight   float64
	IdealWaveHeight float64
	MaxWaveHeight   float64

	IdealWaveDirection float64
	IdealWavePeriod    float64

	IdealWindSpeed     float64
	MaxWindSpeed       float64
	IdealWindDirection float64

	IdealTideHeight float64
	IdealTideType   string

	IdealWaterTemperature float64
	IdealAirTemperature   float64

	IdealCurrentSpeed float64

	IsActive   bool
	Provenance Provenance
}

// genericLevelDefaults is the fixed per-level floor of the hierarchy.
// It covers every field the scorer reads, so a resolved profile is
// complete no matter how sparse the upper tiers are.
var genericLevelDefaults = map[models.SurfLevel]Profile{
	models.LevelIniciante: {
		MinWaveHeight: 0.3, IdealWaveHeight: 0.8, MaxWaveHeight: 1.2,
		IdealWaveDirection: 180, IdealWavePeriod: 8,
		IdealWindSpeed: 3, MaxWindSpeed: 12, IdealWindDirection: 0,
		IdealTideHeight: 0.6, IdealTideType: forecast.TideFlowAny,
		IdealWaterTemperature: 24, IdealAirTemperature: 27,
		IdealCurrentSpeed: 0,
	},
	models.LevelMaroleiro: {
		MinWaveHeight: 0.4, IdealWaveHeight: 1.0, MaxWaveHeight: 1.6,
		IdealWaveDirection: 180, IdealWavePeriod: 10,
		IdealWindSpeed: 4, MaxWindSpeed: 15, IdealWindDirection: 0,
		IdealTideHeight: 0.5, IdealTideType: forecast.TideFlowAny,
		IdealWaterTemperature: 23, IdealAirTemperature: 26,
		IdealCurrentSpeed: 0,
	},
	models.LevelIntermediario: {
		MinWaveHeight: 0.5, IdealWaveHeight: 1.5, MaxWaveHeight: 2.5,
		IdealWaveDirection: 180, IdealWavePeriod: 12,
		IdealWindSpeed: 5, MaxWindSpeed: 20, IdealWindDirection: 0,
		IdealTideHeight: 0.5, IdealTideType: forecast.TideFlowAny,
		IdealWaterTemperature: 22, IdealAirTemperature: 25,
		IdealCurrentSpeed: 0,
	},
	models.LevelPro: {
		MinWaveHeight: 0.8, IdealWaveHeight: 2.2, MaxWaveHeight: 4.0,
		IdealWaveDirection: 180, IdealWavePeriod: 15,
		IdealWindSpeed: 6, MaxWindSpeed: 25, IdealWindDirection: 0,
		IdealTideHeight: 0.4, IdealTideType: forecast.TideFlowAny,
		IdealWaterTemperature: 21, IdealAirTemperature: 24,
		IdealCurrentSpeed: 0,
	},
}

// idealSwellPeriodByLevel feeds the simple wave formula: more skilled
// riders want more power, which means longer periods.
var idealSwellPeriodByLevel = map[models.SurfLevel]float64{
	models.LevelIniciante:     8,
	models.LevelMaroleiro:     10,
	models.LevelIntermediario: 12,
	models.LevelPro:           15,
}

// IdealSwellPeriod returns the ideal swell period for a skill tier.
func IdealSwellPeriod(level models.SurfLevel) float64 {
	if p, ok := idealSwellPeriodByLevel[level]; ok {
		return p
	}
	return idealSwellPeriodByLevel[models.DefaultSurfLevel]
}

// GenericProfile returns the generic-level default profile for a skill
// tier, tagged as synthesized.
func GenericProfile(level models.SurfLevel) Profile {
	p, ok := genericLevelDefaults[level]
	if !ok {
		p = genericLevelDefaults[models.DefaultSurfLevel]
	}
	p.PreferenceID = 0
	p.IsActive = false
	p.Provenance = ProvenanceGenericLevelDefault
	return p
}

// Resolve merges the three preference tiers for one (user, spot) pair:
//
//  1. the user's own active spot record, used verbatim where set;
//  2. the spot's defaults for the user's level, overlaying only their
//     non-null fields;
//  3. the generic level table as the floor.
//
// Later tiers only fill what earlier tiers left unset, so the result
// is always fully populated. It is rebuilt on every request, never
// cached by the engine.
func Resolve(userPref, levelSpotPref *models.Preference, level models.SurfLevel) Profile {
	profile := GenericProfile(level)

	if levelSpotPref != nil {
		overlay(&profile, levelSpotPref)
		profile.Provenance = ProvenanceSpotLevelDefault
	}

	if userPref != nil && userPref.IsActive {
		overlay(&profile, userPref)
		profile.PreferenceID = userPref.PreferenceID
		profile.IsActive = true
		profile.Provenance = ProvenanceUserCustom
	}

	return profile
}

// overlay copies the non-null fields of a stored record onto the
// profile.
func overlay(dst *Profile, src *models.Preference) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&dst.MinWaveHeight, src.MinWaveHeight)
	setF(&dst.IdealWaveHeight, src.IdealWaveHeight)
	setF(&dst.MaxWaveHeight, src.MaxWaveHeight)
	setF(&dst.IdealWaveDirection, src.IdealWaveDirection)
	setF(&dst.IdealWavePeriod, src.IdealWavePeriod)
	setF(&dst.IdealWindSpeed, src.IdealWindSpeed)
	setF(&dst.MaxWindSpeed, src.MaxWindSpeed)
	setF(&dst.IdealWindDirection, src.IdealWindDirection)
	setF(&dst.IdealTideHeight, src.IdealTideHeight)
	setF(&dst.IdealWaterTemperature, src.IdealWaterTemperature)
	setF(&dst.IdealAirTemperature, src.IdealAirTemperature)
	setF(&dst.IdealCurrentSpeed, src.IdealCurrentSpeed)
	if src.IdealTideType != nil {
		dst.IdealTideType = *src.IdealTideType
	}
}
