package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/models/forecast"
	"github.com/Bryanads/thecheckAPI/models/spot"
	"github.com/Bryanads/thecheckAPI/recommendation"
)

func f64(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

// testClock pins the service clock to a Wednesday so day selections
// are deterministic.
var testClock = time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)

type recommendationFixture struct {
	service     *RecommendationService
	spotDao     *redis.RedisSpotDAO
	forecastDao *redis.RedisForecastDAO
	prefDao     *redis.RedisPreferenceDAO
	userDao     *redis.RedisUserDAO
}

func newRecommendationFixture() *recommendationFixture {
	client := db.NewMockRedisClient(context.Background())
	spotDao := redis.NewRedisSpotDAO(client)
	forecastDao := redis.NewRedisForecastDAO(client)
	prefDao := redis.NewRedisPreferenceDAO(client)
	userDao := redis.NewRedisUserDAO(client)
	cacheDao := redis.NewRedisRecommendationCacheDAO(client)

	service := NewRecommendationService(
		spotDao, forecastDao, prefDao, userDao, cacheDao,
		recommendation.DefaultPolicy, time.Hour)
	service.SetNowFunc(func() time.Time { return testClock })

	return &recommendationFixture{
		service:     service,
		spotDao:     spotDao,
		forecastDao: forecastDao,
		prefDao:     prefDao,
		userDao:     userDao,
	}
}

// idealSample matches the intermediario generic profile on every
// scored factor.
func idealSample(ts time.Time) forecast.Sample {
	return forecast.Sample{
		TimestampUTC:     ts,
		WaveHeight:       f64(1.5),
		WaveDirection:    f64(180),
		WavePeriod:       f64(12),
		WindSpeed:        f64(5),
		WindDirection:    f64(0),
		SeaLevel:         f64(0.5),
		WaterTemperature: f64(22),
		AirTemperature:   f64(25),
		CurrentSpeed:     f64(0),
	}
}

func (f *recommendationFixture) seedSpot(t *testing.T, spotID int64, name string) {
	t.Helper()
	err := f.spotDao.UpsertSpot(spot.Spot{
		SpotID:    spotID,
		Name:      name,
		Latitude:  -23.0327,
		Longitude: -43.5045,
	})
	assert.NoError(t, err)
}

func basicRequest(spotIDs ...int64) models.RecommendationRequest {
	return models.RecommendationRequest{
		SpotIDs:      spotIDs,
		DaySelection: models.DaySelection{Type: models.DaySelectionOffsets, Values: []int{0}},
		TimeWindow:   models.TimeWindow{Start: "06:00", End: "18:00"},
	}
}

func TestGetRecommendations_EndToEnd(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	bestHour := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1, idealSample(bestHour)))

	recs, err := f.service.GetRecommendations(context.Background(), basicRequest(1))

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "2025-01-01", recs[0].Date)
	assert.Len(t, recs[0].RankedSpots, 1)
	assert.Equal(t, int64(1), recs[0].RankedSpots[0].SpotID)
	assert.Equal(t, "Prainha", recs[0].RankedSpots[0].SpotName)
	assert.Equal(t, bestHour, recs[0].RankedSpots[0].BestHourUTC)
	assert.Equal(t, 100.0, recs[0].RankedSpots[0].Scores.OverallScore)
}

func TestGetRecommendations_RanksSpotsDescending(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	f.seedSpot(t, 2, "Arpoador")

	ts := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1, idealSample(ts)))

	ripping := idealSample(ts)
	ripping.CurrentSpeed = f64(50)
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(2, ripping))

	recs, err := f.service.GetRecommendations(context.Background(), basicRequest(1, 2))

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Len(t, recs[0].RankedSpots, 2)
	assert.Equal(t, int64(1), recs[0].RankedSpots[0].SpotID)
	assert.Equal(t, int64(2), recs[0].RankedSpots[1].SpotID)
	assert.Greater(t, recs[0].RankedSpots[0].Scores.OverallScore, recs[0].RankedSpots[1].Scores.OverallScore)
}

func TestGetRecommendations_NoSpotsRejected(t *testing.T) {
	f := newRecommendationFixture()

	_, err := f.service.GetRecommendations(context.Background(), models.RecommendationRequest{})

	assert.ErrorIs(t, err, ErrNoSpots)
}

func TestGetRecommendations_BadWindowRejected(t *testing.T) {
	f := newRecommendationFixture()

	req := basicRequest(1)
	req.TimeWindow.Start = "25:00"
	_, err := f.service.GetRecommendations(context.Background(), req)

	assert.ErrorIs(t, err, ErrBadTimeWindow)
}

func TestGetRecommendations_TimeWindowFiltersHours(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))))

	req := basicRequest(1)
	req.TimeWindow = models.TimeWindow{Start: "10:00", End: "12:00"}
	recs, err := f.service.GetRecommendations(context.Background(), req)

	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendations_DayOffsetsFilterDays(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC))))

	today, err := f.service.GetRecommendations(context.Background(), basicRequest(1))
	assert.NoError(t, err)
	assert.Empty(t, today)

	req := basicRequest(1)
	req.DaySelection.Values = []int{1}
	tomorrow, err := f.service.GetRecommendations(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, tomorrow, 1)
	assert.Equal(t, "2025-01-02", tomorrow[0].Date)
}

func TestGetRecommendations_WeekdaySelection(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	// testClock is a Wednesday; the next Saturday is Jan 4.
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 4, 8, 0, 0, 0, time.UTC))))

	req := basicRequest(1)
	req.DaySelection = models.DaySelection{Type: models.DaySelectionWeekdays, Values: []int{6}}
	recs, err := f.service.GetRecommendations(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "2025-01-04", recs[0].Date)
}

func TestGetRecommendations_VetoedHoursDropped(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")

	flat := idealSample(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))
	flat.WaveHeight = f64(0.2)
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1, flat))

	recs, err := f.service.GetRecommendations(context.Background(), basicRequest(1))

	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendations_LimitTruncatesRanking(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	f.seedSpot(t, 2, "Arpoador")

	ts := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1, idealSample(ts)))
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(2, idealSample(ts)))

	req := basicRequest(1, 2)
	req.Limit = intPtr(1)
	recs, err := f.service.GetRecommendations(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Len(t, recs[0].RankedSpots, 1)
	assert.Equal(t, int64(1), recs[0].RankedSpots[0].SpotID)
}

func TestGetRecommendations_CachedResultSurvivesForecastPurge(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))))

	first, err := f.service.GetRecommendations(context.Background(), basicRequest(1))
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	assert.NoError(t, f.forecastDao.PurgeSpotForecasts(1))

	second, err := f.service.GetRecommendations(context.Background(), basicRequest(1))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetRecommendations_ActiveUserPreferenceWins(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	assert.NoError(t, f.userDao.UpsertUser(models.User{
		ID:        "surfer-1",
		SurfLevel: models.LevelIntermediario,
	}))

	// The stored preference wants bigger waves than the generic
	// intermediario table, so the 1.5m sample scores below 100.
	assert.NoError(t, f.prefDao.SetUserPreference(models.Preference{
		PreferenceID:    7,
		UserID:          "surfer-1",
		SpotID:          1,
		MinWaveHeight:   f64(1.0),
		IdealWaveHeight: f64(2.5),
		MaxWaveHeight:   f64(4.0),
		IsActive:        true,
	}))
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))))

	req := basicRequest(1)
	req.UserID = "surfer-1"
	recs, err := f.service.GetRecommendations(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	best := recs[0].RankedSpots[0]
	assert.Less(t, best.Scores.WaveScore, 100.0)
	assert.Greater(t, best.Scores.WaveScore, 0.0)
}

func TestGetRecommendations_UnknownSpotSkipped(t *testing.T) {
	f := newRecommendationFixture()
	f.seedSpot(t, 1, "Prainha")
	assert.NoError(t, f.forecastDao.UpsertHourlyForecast(1,
		idealSample(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))))

	recs, err := f.service.GetRecommendations(context.Background(), basicRequest(1, 99))

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Len(t, recs[0].RankedSpots, 1)
}
