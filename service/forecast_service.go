package services

import (
	"time"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models/forecast"
)

// ForecastService serves stored forecast data to the read endpoints.
type ForecastService struct {
	forecastDao *redis.RedisForecastDAO
	now         func() time.Time
}

// NewForecastService constructs the service with its DAO.
func NewForecastService(forecastDao *redis.RedisForecastDAO) *ForecastService {
	return &ForecastService{
		forecastDao: forecastDao,
		now:         time.Now,
	}
}

// GetSpotForecast returns the stored hourly samples for a spot from
// the current hour through the given number of days ahead.
func (fs *ForecastService) GetSpotForecast(spotID int64, days int) ([]forecast.Sample, error) {
	if days < 1 {
		days = 1
	}
	start := fs.now().UTC().Truncate(time.Hour)
	end := start.AddDate(0, 0, days)
	return fs.forecastDao.GetForecastWindow(spotID, start, end)
}

// GetTideExtremes returns the stored tide extremes for a spot.
func (fs *ForecastService) GetTideExtremes(spotID int64) ([]forecast.ExtremeEvent, error) {
	return fs.forecastDao.GetTideExtremes(spotID)
}
