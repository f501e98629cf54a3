package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/recommendation"
)

// scoreConcurrency bounds how many spots are scored in parallel for
// one request.
const scoreConcurrency = 4

var ErrNoSpots = errors.New("recommendation request carries no spot IDs")
var ErrBadTimeWindow = errors.New("invalid time window")

// RecommendationService orchestrates a recommendation request: it
// resolves the user's preferences per spot, scores the stored forecast
// hours inside the requested schedule, and aggregates the survivors
// into ranked days.
type RecommendationService struct {
	spotDao       *redis.RedisSpotDAO
	forecastDao   *redis.RedisForecastDAO
	preferenceDao *redis.RedisPreferenceDAO
	userDao       *redis.RedisUserDAO
	cacheDao      *redis.RedisRecommendationCacheDAO

	policy   recommendation.Policy
	cacheTTL time.Duration

	// now is injectable so schedule translation is testable.
	now func() time.Time
}

// NewRecommendationService constructs the service with its DAOs.
func NewRecommendationService(
	spotDao *redis.RedisSpotDAO,
	forecastDao *redis.RedisForecastDAO,
	preferenceDao *redis.RedisPreferenceDAO,
	userDao *redis.RedisUserDAO,
	cacheDao *redis.RedisRecommendationCacheDAO,
	policy recommendation.Policy,
	cacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		spotDao:       spotDao,
		forecastDao:   forecastDao,
		preferenceDao: preferenceDao,
		userDao:       userDao,
		cacheDao:      cacheDao,
		policy:        policy,
		cacheTTL:      cacheTTL,
		now:           time.Now,
	}
}

// SetNowFunc overrides the clock. Test hook.
func (rs *RecommendationService) SetNowFunc(now func() time.Time) {
	rs.now = now
}

// GetRecommendations computes ranked daily recommendations for the
// request. Results are cached under a request fingerprint for the
// configured TTL.
func (rs *RecommendationService) GetRecommendations(ctx context.Context, req models.RecommendationRequest) ([]models.DailyRecommendation, error) {
	if len(req.SpotIDs) == 0 {
		return nil, ErrNoSpots
	}
	window, err := recommendation.NewTimeWindow(req.TimeWindow.Start, req.TimeWindow.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTimeWindow, err)
	}

	now := rs.now()
	fingerprint := requestFingerprint(req, now)
	if cached, err := rs.cacheDao.GetRecommendations(fingerprint); err != nil {
		log.Printf("[RecommendationService] Cache lookup failed: %v", err)
	} else if cached != nil {
		log.Printf("[RecommendationService] Cache hit for fingerprint %s", fingerprint)
		return cached, nil
	}

	level := models.DefaultSurfLevel
	if req.UserID != "" {
		user, err := rs.userDao.GetUser(req.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil && user.SurfLevel.IsValid() {
			level = user.SurfLevel
		}
	}

	offsets := recommendation.TranslateDaySelection(req.DaySelection, now)
	offsetSet := make(map[int]bool, len(offsets))
	maxOffset := 0
	for _, o := range offsets {
		offsetSet[o] = true
		if o > maxOffset {
			maxOffset = o
		}
	}
	todayUTC := now.UTC().Truncate(24 * time.Hour)
	rangeStart := todayUTC
	rangeEnd := todayUTC.AddDate(0, 0, maxOffset+1).Add(-time.Hour)

	var mu sync.Mutex
	var entries []recommendation.ScoredEntry

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for _, spotID := range req.SpotIDs {
		spotID := spotID
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			spotEntries, err := rs.scoreSpot(req.UserID, spotID, level, offsetSet, todayUTC, rangeStart, rangeEnd, window)
			if err != nil {
				return err
			}
			mu.Lock()
			entries = append(entries, spotEntries...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := recommendation.AggregateDaily(entries, recommendation.MinScoreThreshold)
	if req.Limit != nil && *req.Limit > 0 {
		for i := range recs {
			if len(recs[i].RankedSpots) > *req.Limit {
				recs[i].RankedSpots = recs[i].RankedSpots[:*req.Limit]
			}
		}
	}

	if err := rs.cacheDao.SetRecommendations(fingerprint, recs, rs.cacheTTL); err != nil {
		log.Printf("[RecommendationService] Failed to cache recommendations: %v", err)
	}
	return recs, nil
}

// scoreSpot scores every stored forecast hour of one spot that falls
// inside the requested days and local time window.
func (rs *RecommendationService) scoreSpot(
	userID string,
	spotID int64,
	level models.SurfLevel,
	offsetSet map[int]bool,
	todayUTC, rangeStart, rangeEnd time.Time,
	window recommendation.TimeWindow,
) ([]recommendation.ScoredEntry, error) {
	spotAttrs, err := rs.spotDao.GetSpot(spotID)
	if err != nil {
		return nil, err
	}
	if spotAttrs == nil {
		log.Printf("[RecommendationService] Skipping unknown spot %d", spotID)
		return nil, nil
	}

	var userPref, levelPref *models.Preference
	if userID != "" {
		if userPref, err = rs.preferenceDao.GetUserPreference(userID, spotID); err != nil {
			return nil, err
		}
	}
	if levelPref, err = rs.preferenceDao.GetLevelSpotPreference(level, spotID); err != nil {
		return nil, err
	}
	profile := recommendation.Resolve(userPref, levelPref, level)

	samples, err := rs.forecastDao.GetForecastWindow(spotID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	extremes, err := rs.forecastDao.GetTideExtremes(spotID)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if spotAttrs.Timezone != "" {
		if parsed, err := time.LoadLocation(spotAttrs.Timezone); err == nil {
			loc = parsed
		} else {
			log.Printf("[RecommendationService] Unknown timezone %q for spot %d, using UTC", spotAttrs.Timezone, spotID)
		}
	}

	var entries []recommendation.ScoredEntry
	for _, sample := range samples {
		offset := int(sample.TimestampUTC.UTC().Truncate(24 * time.Hour).Sub(todayUTC).Hours() / 24)
		if !offsetSet[offset] {
			continue
		}
		if !window.Contains(sample.TimestampUTC.In(loc)) {
			continue
		}

		phase := recommendation.ResolvePhase(sample.TimestampUTC, extremes)
		scores := recommendation.ScoreHour(rs.policy, sample, profile, spotAttrs, phase, level)
		entries = append(entries, recommendation.ScoredEntry{
			SpotID:       spotAttrs.SpotID,
			SpotName:     spotAttrs.Name,
			Location:     loc,
			TimestampUTC: sample.TimestampUTC,
			Scores:       scores,
			Conditions:   sample,
		})
	}
	return entries, nil
}

// requestFingerprint hashes the request together with the calendar
// date, since day offsets are relative to today.
func requestFingerprint(req models.RecommendationRequest, now time.Time) string {
	payload, _ := json.Marshal(struct {
		Request models.RecommendationRequest `json:"request"`
		Date    string                       `json:"date"`
	}{req, now.UTC().Format("2006-01-02")})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:16])
}
