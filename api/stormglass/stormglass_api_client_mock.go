package stormglass

import (
	"fmt"
	"time"

	"github.com/Bryanads/thecheckAPI/config"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/util"
)

// StormGlassApiClientMock serves canned provider responses from disk,
// so dev deployments never spend the daily request quota.
type StormGlassApiClientMock struct {
}

// NewStormGlassApiClientMock creates a new instance of StormGlassApiClientMock
func NewStormGlassApiClientMock() *StormGlassApiClientMock {
	return &StormGlassApiClientMock{}
}

// GetWeatherPoint retrieves the canned hourly forecast response.
func (c *StormGlassApiClientMock) GetWeatherPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.WeatherPointResponse, error) {
	response, err := util.ReadWeatherPointResponseFromJSON(config.GetResourcePath(config.WEATHER_POINT_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read weather point response from json")
		return nil, err
	}
	return response, nil
}

// GetTideExtremesPoint retrieves the canned tide extremes response.
func (c *StormGlassApiClientMock) GetTideExtremesPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.TideExtremesResponse, error) {
	response, err := util.ReadTideExtremesResponseFromJSON(config.GetResourcePath(config.TIDE_EXTREMES_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read tide extremes response from json")
		return nil, err
	}
	return response, nil
}

// SetAPIKey is a no-op on the mock.
func (c *StormGlassApiClientMock) SetAPIKey(key string) {
}
