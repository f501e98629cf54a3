package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

const FORECAST_HOUR_KEY_FORMAT_V1 = "forecast_hour_v1:%d_%s"
const TIDE_EXTREMES_KEY_FORMAT_V1 = "tide_extremes_v1:%d"

// forecastHourLayout is the UTC hour component of a forecast key.
const forecastHourLayout = "2006-01-02T15"

// RedisForecastDAO stores hourly forecast samples and tide extremes
// per spot. Samples are keyed by spot and UTC hour so a refresh
// overwrites in place.
type RedisForecastDAO struct {
	client db.RedisClient
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient) *RedisForecastDAO {
	return &RedisForecastDAO{client: client}
}

// UpsertHourlyForecast stores one forecast sample for a spot.
func (dao *RedisForecastDAO) UpsertHourlyForecast(spotID int64, sample forecast.Sample) error {
	key := hourKey(spotID, sample.TimestampUTC)
	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for spot %d: %w", spotID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetForecastWindow retrieves the stored samples for a spot between
// two instants, inclusive, walking hour by hour. Missing hours are
// skipped, never an error.
func (dao *RedisForecastDAO) GetForecastWindow(spotID int64, fromUTC, toUTC time.Time) ([]forecast.Sample, error) {
	var samples []forecast.Sample
	for hour := fromUTC.UTC().Truncate(time.Hour); !hour.After(toUTC.UTC()); hour = hour.Add(time.Hour) {
		str, err := dao.client.Get(hourKey(spotID, hour))
		if err != nil {
			if isMiss(err) {
				continue
			}
			return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
		}
		var s forecast.Sample
		if err := json.Unmarshal([]byte(str), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// SetTideExtremes stores the tide extreme events for a spot.
func (dao *RedisForecastDAO) SetTideExtremes(spotID int64, extremes []forecast.ExtremeEvent) error {
	key := fmt.Sprintf(TIDE_EXTREMES_KEY_FORMAT_V1, spotID)
	data, err := json.Marshal(extremes)
	if err != nil {
		return fmt.Errorf("failed to marshal tide extremes for spot %d: %w", spotID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set tide extremes in redis: %w", err)
	}
	return nil
}

// GetTideExtremes retrieves the tide extreme events for a spot. A spot
// with no stored extremes yields an empty slice.
func (dao *RedisForecastDAO) GetTideExtremes(spotID int64) ([]forecast.ExtremeEvent, error) {
	key := fmt.Sprintf(TIDE_EXTREMES_KEY_FORMAT_V1, spotID)
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tide extremes from redis: %w", err)
	}
	var extremes []forecast.ExtremeEvent
	if err := json.Unmarshal([]byte(str), &extremes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tide extremes JSON: %w", err)
	}
	return extremes, nil
}

// PurgeSpotForecasts drops every stored forecast hour for a spot.
func (dao *RedisForecastDAO) PurgeSpotForecasts(spotID int64) error {
	pattern := fmt.Sprintf("forecast_hour_v1:%d_*", spotID)
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return fmt.Errorf("failed to list forecast keys: %w", err)
	}
	for _, k := range keys {
		if err := dao.client.Del(k); err != nil {
			return fmt.Errorf("failed to delete forecast key %s: %w", k, err)
		}
	}
	return nil
}

func hourKey(spotID int64, t time.Time) string {
	return fmt.Sprintf(FORECAST_HOUR_KEY_FORMAT_V1, spotID, t.UTC().Format(forecastHourLayout))
}
