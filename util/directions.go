package util

import "math"

var cardinalPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var cardinalDegrees = map[string]float64{
	"N": 0, "NNE": 22.5, "NE": 45, "ENE": 67.5,
	"E": 90, "ESE": 112.5, "SE": 135, "SSE": 157.5,
	"S": 180, "SSW": 202.5, "SW": 225, "WSW": 247.5,
	"W": 270, "WNW": 292.5, "NW": 315, "NNW": 337.5,
}

// DegreesToCardinal converts a compass bearing to its 16-point
// cardinal label.
func DegreesToCardinal(degrees float64) string {
	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}
	index := int(math.Round(normalized/22.5)) % 16
	return cardinalPoints[index]
}

// CardinalToDegrees converts a 16-point cardinal label to its compass
// bearing. Unknown labels yield -1.
func CardinalToDegrees(cardinal string) float64 {
	if deg, ok := cardinalDegrees[cardinal]; ok {
		return deg
	}
	return -1
}
