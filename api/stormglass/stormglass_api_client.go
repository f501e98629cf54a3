package stormglass

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Bryanads/thecheckAPI/api"
	"github.com/Bryanads/thecheckAPI/models"
)

// weatherParams enumerates every forecast parameter the scorer reads.
var weatherParams = []string{
	"waveHeight", "waveDirection", "wavePeriod",
	"swellHeight", "swellDirection", "swellPeriod",
	"secondarySwellHeight", "secondarySwellDirection", "secondarySwellPeriod",
	"windSpeed", "windDirection",
	"waterTemperature", "airTemperature",
	"currentSpeed", "currentDirection",
	"seaLevel",
}

// StormGlassApiClient embeds the common HTTPClient
type StormGlassApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewStormGlassApiClient creates a new instance of StormGlassApiClient
func NewStormGlassApiClient(httpClient *api.HTTPClient) *StormGlassApiClient {
	return &StormGlassApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent in the Authorization header.
func (c *StormGlassApiClient) SetAPIKey(key string) {
	c.apiKey = key
}

// GetWeatherPoint retrieves hourly forecast parameters for a coordinate.
func (c *StormGlassApiClient) GetWeatherPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.WeatherPointResponse, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("params", strings.Join(weatherParams, ","))
	query.Set("source", "sg")
	query.Set("start", strconv.FormatInt(startUTC.UTC().Unix(), 10))
	query.Set("end", strconv.FormatInt(endUTC.UTC().Unix(), 10))

	var response models.WeatherPointResponse
	err := c.Request("GET", "/weather/point?"+query.Encode(), c.authHeaders(), nil, &response)
	if err != nil {
		return nil, fmt.Errorf("weather point request failed: %w", err)
	}
	return &response, nil
}

// GetTideExtremesPoint retrieves tide extrema for a coordinate.
func (c *StormGlassApiClient) GetTideExtremesPoint(lat float64, lng float64, startUTC, endUTC time.Time) (*models.TideExtremesResponse, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("start", strconv.FormatInt(startUTC.UTC().Unix(), 10))
	query.Set("end", strconv.FormatInt(endUTC.UTC().Unix(), 10))

	var response models.TideExtremesResponse
	err := c.Request("GET", "/tide/extremes/point?"+query.Encode(), c.authHeaders(), nil, &response)
	if err != nil {
		return nil, fmt.Errorf("tide extremes request failed: %w", err)
	}
	return &response, nil
}

func (c *StormGlassApiClient) authHeaders() map[string]string {
	return map[string]string{"Authorization": c.apiKey}
}
