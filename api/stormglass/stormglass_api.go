package stormglass

import (
	"time"

	"github.com/Bryanads/thecheckAPI/models"
)

// StormGlassAPI defines the interface for interacting with the StormGlass API
type StormGlassAPI interface {
	GetWeatherPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.WeatherPointResponse, error)
	GetTideExtremesPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.TideExtremesResponse, error)
	SetAPIKey(key string)
}
