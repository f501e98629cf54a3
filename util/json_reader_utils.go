package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/spot"
)

// ReadSpotsFromJSON loads the spot catalog from JSON on disk.
func ReadSpotsFromJSON(filePath string) ([]spot.Spot, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var spots []spot.Spot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spots: %w", err)
	}
	return spots, nil
}

// ReadWeatherPointResponseFromJSON loads a WeatherPointResponse from JSON on disk.
func ReadWeatherPointResponseFromJSON(filePath string) (*models.WeatherPointResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.WeatherPointResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal WeatherPointResponse: %w", err)
	}
	return &resp, nil
}

// ReadTideExtremesResponseFromJSON loads a TideExtremesResponse from JSON on disk.
func ReadTideExtremesResponseFromJSON(filePath string) (*models.TideExtremesResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.TideExtremesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TideExtremesResponse: %w", err)
	}
	return &resp, nil
}
