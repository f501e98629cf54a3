package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

func floatPtr(v float64) *float64 { return &v }

func TestRedisForecastDAO_UpsertAndWindow(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisForecastDAO(mockClient)

	base := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sample := forecast.Sample{
			TimestampUTC: base.Add(time.Duration(i) * time.Hour),
			WaveHeight:   floatPtr(1.0 + float64(i)*0.1),
		}
		if err := dao.UpsertHourlyForecast(4, sample); err != nil {
			t.Fatalf("UpsertHourlyForecast failed: %v", err)
		}
	}

	// Act: fetch a window covering the middle two hours.
	samples, err := dao.GetForecastWindow(4, base.Add(time.Hour), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("GetForecastWindow failed: %v", err)
	}

	// Assert
	if len(samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(samples))
	}
	if *samples[0].WaveHeight != 1.1 || *samples[1].WaveHeight != 1.2 {
		t.Errorf("Expected hours in order, got %v and %v", *samples[0].WaveHeight, *samples[1].WaveHeight)
	}
}

func TestRedisForecastDAO_WindowSkipsMissingHours(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisForecastDAO(mockClient)

	base := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	_ = dao.UpsertHourlyForecast(4, forecast.Sample{TimestampUTC: base, WaveHeight: floatPtr(1.0)})
	_ = dao.UpsertHourlyForecast(4, forecast.Sample{TimestampUTC: base.Add(3 * time.Hour), WaveHeight: floatPtr(1.3)})

	samples, err := dao.GetForecastWindow(4, base, base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("GetForecastWindow failed: %v", err)
	}
	if len(samples) != 2 {
		t.Errorf("Expected gaps to be skipped, got %d samples", len(samples))
	}
}

func TestRedisForecastDAO_UpsertOverwritesHour(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisForecastDAO(mockClient)

	hour := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	_ = dao.UpsertHourlyForecast(4, forecast.Sample{TimestampUTC: hour, WaveHeight: floatPtr(1.0)})
	_ = dao.UpsertHourlyForecast(4, forecast.Sample{TimestampUTC: hour, WaveHeight: floatPtr(1.8)})

	samples, err := dao.GetForecastWindow(4, hour, hour)
	if err != nil {
		t.Fatalf("GetForecastWindow failed: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("Expected a single sample for the hour, got %d", len(samples))
	}
	if *samples[0].WaveHeight != 1.8 {
		t.Errorf("Expected the refreshed value, got %v", *samples[0].WaveHeight)
	}
}

func TestRedisForecastDAO_TideExtremes(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisForecastDAO(mockClient)

	extremes := []forecast.ExtremeEvent{
		{TimestampUTC: time.Date(2025, 1, 1, 4, 0, 0, 0, time.UTC), Type: forecast.TideEventLow, Height: 0.2},
		{TimestampUTC: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), Type: forecast.TideEventHigh, Height: 1.4},
	}
	if err := dao.SetTideExtremes(4, extremes); err != nil {
		t.Fatalf("SetTideExtremes failed: %v", err)
	}

	got, err := dao.GetTideExtremes(4)
	if err != nil {
		t.Fatalf("GetTideExtremes failed: %v", err)
	}
	if len(got) != 2 || got[1].Type != forecast.TideEventHigh {
		t.Errorf("Expected stored extremes back, got %+v", got)
	}

	// A spot with no stored extremes is not an error.
	none, err := dao.GetTideExtremes(999)
	if err != nil {
		t.Fatalf("Expected no error on a miss, got %v", err)
	}
	if none != nil {
		t.Errorf("Expected nil extremes for an unknown spot, got %+v", none)
	}
}

func TestRedisForecastDAO_PurgeSpotForecasts(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisForecastDAO(mockClient)

	base := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	_ = dao.UpsertHourlyForecast(4, forecast.Sample{TimestampUTC: base, WaveHeight: floatPtr(1.0)})
	_ = dao.UpsertHourlyForecast(7, forecast.Sample{TimestampUTC: base, WaveHeight: floatPtr(1.5)})

	if err := dao.PurgeSpotForecasts(4); err != nil {
		t.Fatalf("PurgeSpotForecasts failed: %v", err)
	}

	purged, _ := dao.GetForecastWindow(4, base, base)
	if len(purged) != 0 {
		t.Errorf("Expected spot 4 forecasts purged, got %d", len(purged))
	}
	kept, _ := dao.GetForecastWindow(7, base, base)
	if len(kept) != 1 {
		t.Errorf("Expected spot 7 forecasts untouched, got %d", len(kept))
	}
}
