package models

// SurfLevel is the coarse skill tier that selects generic default
// preference tables and the ideal swell period table.
type SurfLevel string

const (
	LevelIniciante     SurfLevel = "iniciante"
	LevelMaroleiro     SurfLevel = "maroleiro"
	LevelIntermediario SurfLevel = "intermediario"
	LevelPro           SurfLevel = "pro"
)

// DefaultSurfLevel is used when a profile carries no level.
const DefaultSurfLevel = LevelIntermediario

// IsValid reports whether the level is one of the four known tiers.
func (l SurfLevel) IsValid() bool {
	switch l {
	case LevelIniciante, LevelMaroleiro, LevelIntermediario, LevelPro:
		return true
	}
	return false
}

// ParseSurfLevel returns the level for s, falling back to the default
// tier for unknown or empty input.
func ParseSurfLevel(s string) SurfLevel {
	l := SurfLevel(s)
	if !l.IsValid() {
		return DefaultSurfLevel
	}
	return l
}
