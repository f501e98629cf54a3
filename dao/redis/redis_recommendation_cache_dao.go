package redis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
)

const RECOMMENDATION_CACHE_KEY_FORMAT_V1 = "recommendation_v1:%s"

// RedisRecommendationCacheDAO caches computed recommendation responses
// with a TTL so identical requests inside the forecast refresh interval
// skip rescoring.
type RedisRecommendationCacheDAO struct {
	client db.RedisClient
}

// NewRedisRecommendationCacheDAO initializes the cache DAO with the Redis client.
func NewRedisRecommendationCacheDAO(client db.RedisClient) *RedisRecommendationCacheDAO {
	return &RedisRecommendationCacheDAO{client: client}
}

// SetRecommendations caches a computed response under the request
// fingerprint.
func (dao *RedisRecommendationCacheDAO) SetRecommendations(fingerprint string, recs []models.DailyRecommendation, ttl time.Duration) error {
	key := fmt.Sprintf(RECOMMENDATION_CACHE_KEY_FORMAT_V1, fingerprint)
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := dao.client.SetWithExpiry(key, string(data), ttl); err != nil {
		return fmt.Errorf("failed to cache recommendations in redis: %w", err)
	}
	return nil
}

// GetRecommendations returns the cached response for a request
// fingerprint, nil on a miss.
func (dao *RedisRecommendationCacheDAO) GetRecommendations(fingerprint string) ([]models.DailyRecommendation, error) {
	key := fmt.Sprintf(RECOMMENDATION_CACHE_KEY_FORMAT_V1, fingerprint)
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached recommendations from redis: %w", err)
	}
	var recs []models.DailyRecommendation
	if err := json.Unmarshal([]byte(str), &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recommendations JSON: %w", err)
	}
	return recs, nil
}
