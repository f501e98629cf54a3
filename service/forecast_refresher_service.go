package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Bryanads/thecheckAPI/api/stormglass"
	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
	"github.com/Bryanads/thecheckAPI/models/spot"
)

// refreshConcurrency bounds how many spots are fetched from the
// provider at once.
const refreshConcurrency = 4

// ForecastRefresherService periodically pulls fresh forecast data from
// StormGlass for every spot in the catalog.
type ForecastRefresherService struct {
	spotDao       *redis.RedisSpotDAO
	forecastDao   *redis.RedisForecastDAO
	stormGlassAPI stormglass.StormGlassAPI
	horizonDays   int
}

// NewForecastRefresherService constructs a new refresher with dependencies.
func NewForecastRefresherService(
	spotDao *redis.RedisSpotDAO,
	forecastDao *redis.RedisForecastDAO,
	stormGlassAPI stormglass.StormGlassAPI,
	horizonDays int,
) *ForecastRefresherService {
	return &ForecastRefresherService{
		spotDao:       spotDao,
		forecastDao:   forecastDao,
		stormGlassAPI: stormGlassAPI,
		horizonDays:   horizonDays,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (fr *ForecastRefresherService) StartPeriodicJob(interval time.Duration) {
	go fr.startPeriodicJob(interval)
}

func (fr *ForecastRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ForecastRefresherService] Running periodic forecast refresh job.")
		if err := fr.RefreshForecasts(context.Background()); err != nil {
			log.Printf("[ForecastRefresherService] RefreshForecasts returned error: %v", err)
		} else {
			log.Println("[ForecastRefresherService] RefreshForecasts completed successfully.")
		}
	}
}

// RefreshForecasts pulls weather and tide data for every spot in the
// catalog. A failure on one spot is logged and skipped, so a partial
// provider outage never blocks the rest of the catalog.
func (fr *ForecastRefresherService) RefreshForecasts(ctx context.Context) error {
	spots, err := fr.spotDao.ListAllSpots()
	if err != nil {
		return err
	}
	log.Printf("[ForecastRefresherService] Refreshing forecasts for %d spots", len(spots))

	start := time.Now().UTC().Truncate(time.Hour)
	end := start.AddDate(0, 0, fr.horizonDays)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)
	for _, s := range spots {
		s := s
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			fr.refreshSpot(s, start, end)
			return nil
		})
	}
	return g.Wait()
}

func (fr *ForecastRefresherService) refreshSpot(s spot.Spot, start, end time.Time) {
	weather, err := fr.stormGlassAPI.GetWeatherPoint(s.Latitude, s.Longitude, start, end)
	if err != nil {
		log.Printf("[ForecastRefresherService] GetWeatherPoint failed for spot %d: %v", s.SpotID, err)
		return
	}

	samples := SamplesFromWeatherPoint(weather)
	for _, sample := range samples {
		if err := fr.forecastDao.UpsertHourlyForecast(s.SpotID, sample); err != nil {
			log.Printf("[ForecastRefresherService] Upsert failed for spot %d hour %v: %v",
				s.SpotID, sample.TimestampUTC, err)
		}
	}
	log.Printf("[ForecastRefresherService] Stored %d forecast hours for spot %d", len(samples), s.SpotID)

	tides, err := fr.stormGlassAPI.GetTideExtremesPoint(s.Latitude, s.Longitude, start, end)
	if err != nil {
		log.Printf("[ForecastRefresherService] GetTideExtremesPoint failed for spot %d: %v", s.SpotID, err)
		return
	}
	extremes := ExtremesFromTideResponse(tides)
	if err := fr.forecastDao.SetTideExtremes(s.SpotID, extremes); err != nil {
		log.Printf("[ForecastRefresherService] SetTideExtremes failed for spot %d: %v", s.SpotID, err)
		return
	}
	log.Printf("[ForecastRefresherService] Stored %d tide extremes for spot %d", len(extremes), s.SpotID)
}

// SamplesFromWeatherPoint flattens a provider weather response into
// forecast samples. Hours with unparseable timestamps are dropped.
func SamplesFromWeatherPoint(resp *models.WeatherPointResponse) []forecast.Sample {
	samples := make([]forecast.Sample, 0, len(resp.Hours))
	for _, h := range resp.Hours {
		ts, err := time.Parse(time.RFC3339, h.Time)
		if err != nil {
			log.Printf("[ForecastRefresherService] Skipping hour with bad timestamp %q: %v", h.Time, err)
			continue
		}
		samples = append(samples, forecast.Sample{
			TimestampUTC:            ts.UTC(),
			WaveHeight:              sgValue(h.WaveHeight),
			WaveDirection:           sgValue(h.WaveDirection),
			WavePeriod:              sgValue(h.WavePeriod),
			SwellHeight:             sgValue(h.SwellHeight),
			SwellDirection:          sgValue(h.SwellDirection),
			SwellPeriod:             sgValue(h.SwellPeriod),
			SecondarySwellHeight:    sgValue(h.SecondarySwellHeight),
			SecondarySwellDirection: sgValue(h.SecondarySwellDirection),
			SecondarySwellPeriod:    sgValue(h.SecondarySwellPeriod),
			WindSpeed:               sgValue(h.WindSpeed),
			WindDirection:           sgValue(h.WindDirection),
			WaterTemperature:        sgValue(h.WaterTemperature),
			AirTemperature:          sgValue(h.AirTemperature),
			CurrentSpeed:            sgValue(h.CurrentSpeed),
			CurrentDirection:        sgValue(h.CurrentDirection),
			SeaLevel:                sgValue(h.SeaLevel),
		})
	}
	return samples
}

// ExtremesFromTideResponse flattens a provider tide response into
// extreme events. Entries with unparseable timestamps or unknown types
// are dropped.
func ExtremesFromTideResponse(resp *models.TideExtremesResponse) []forecast.ExtremeEvent {
	extremes := make([]forecast.ExtremeEvent, 0, len(resp.Data))
	for _, p := range resp.Data {
		ts, err := time.Parse(time.RFC3339, p.Time)
		if err != nil {
			log.Printf("[ForecastRefresherService] Skipping extreme with bad timestamp %q: %v", p.Time, err)
			continue
		}
		eventType := forecast.TideEventType(p.Type)
		if eventType != forecast.TideEventLow && eventType != forecast.TideEventHigh {
			log.Printf("[ForecastRefresherService] Skipping extreme with unknown type %q", p.Type)
			continue
		}
		extremes = append(extremes, forecast.ExtremeEvent{
			TimestampUTC: ts.UTC(),
			Type:         eventType,
			Height:       p.Height,
		})
	}
	return extremes
}

func sgValue(v *models.SourceValue) *float64 {
	if v == nil {
		return nil
	}
	return v.SG
}
