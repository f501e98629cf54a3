package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bryanads/thecheckAPI/api/stormglass"
	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
	"github.com/Bryanads/thecheckAPI/models/spot"
)

func TestRefreshForecasts_StoresMockProviderData(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "..")

	client := db.NewMockRedisClient(context.Background())
	spotDao := redis.NewRedisSpotDAO(client)
	forecastDao := redis.NewRedisForecastDAO(client)
	service := NewForecastRefresherService(
		spotDao, forecastDao, stormglass.NewStormGlassApiClientMock(), 7)

	assert.NoError(t, spotDao.UpsertSpot(spot.Spot{
		SpotID:    1,
		Name:      "Praia da Macumba",
		Latitude:  -23.0327,
		Longitude: -43.5045,
	}))

	assert.NoError(t, service.RefreshForecasts(context.Background()))

	samples, err := forecastDao.GetForecastWindow(1,
		time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Len(t, samples, 3)
	assert.Equal(t, time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC), samples[0].TimestampUTC)
	assert.NotNil(t, samples[0].WaveHeight)

	// The provider omits swell and current parameters for the last
	// fixture hour; absent values must stay nil.
	assert.Nil(t, samples[2].SwellHeight)
	assert.Nil(t, samples[2].CurrentSpeed)

	extremes, err := forecastDao.GetTideExtremes(1)
	assert.NoError(t, err)
	assert.Len(t, extremes, 4)
	assert.Equal(t, forecast.TideEventLow, extremes[0].Type)
	assert.Equal(t, time.Date(2025, 1, 1, 4, 12, 0, 0, time.UTC), extremes[0].TimestampUTC)
}

func TestSamplesFromWeatherPoint_DropsBadTimestamps(t *testing.T) {
	resp := &models.WeatherPointResponse{
		Hours: []models.WeatherHour{
			{Time: "not-a-timestamp", WaveHeight: &models.SourceValue{SG: f64(1.0)}},
			{Time: "2025-01-01T06:00:00+00:00", WaveHeight: &models.SourceValue{SG: f64(1.2)}},
		},
	}

	samples := SamplesFromWeatherPoint(resp)

	assert.Len(t, samples, 1)
	assert.Equal(t, time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC), samples[0].TimestampUTC)
	assert.Equal(t, 1.2, *samples[0].WaveHeight)
	assert.Nil(t, samples[0].WindSpeed)
}

func TestExtremesFromTideResponse_DropsMalformedEntries(t *testing.T) {
	resp := &models.TideExtremesResponse{
		Data: []models.TideExtremePoint{
			{Time: "2025-01-01T04:12:00+00:00", Height: 0.21, Type: "low"},
			{Time: "garbage", Height: 1.0, Type: "high"},
			{Time: "2025-01-01T10:26:00+00:00", Height: 1.38, Type: "slack"},
			{Time: "2025-01-01T10:26:00+00:00", Height: 1.38, Type: "high"},
		},
	}

	extremes := ExtremesFromTideResponse(resp)

	assert.Len(t, extremes, 2)
	assert.Equal(t, forecast.TideEventLow, extremes[0].Type)
	assert.Equal(t, forecast.TideEventHigh, extremes[1].Type)
}
