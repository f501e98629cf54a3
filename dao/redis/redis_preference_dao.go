package redis

import (
	"encoding/json"
	"fmt"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
)

const USER_SPOT_PREF_KEY_FORMAT_V1 = "user_spot_pref_v1:%s_%d"
const LEVEL_SPOT_PREF_KEY_FORMAT_V1 = "level_spot_pref_v1:%s_%d"

// RedisPreferenceDAO stores the two persisted tiers of the preference
// hierarchy: per-user spot records and per-level spot defaults. The
// generic level floor is code, not data.
type RedisPreferenceDAO struct {
	client db.RedisClient
}

// NewRedisPreferenceDAO initializes a RedisPreferenceDAO with the Redis client.
func NewRedisPreferenceDAO(client db.RedisClient) *RedisPreferenceDAO {
	return &RedisPreferenceDAO{client: client}
}

// SetUserPreference stores a user's preference record for one spot.
func (dao *RedisPreferenceDAO) SetUserPreference(p models.Preference) error {
	key := fmt.Sprintf(USER_SPOT_PREF_KEY_FORMAT_V1, p.UserID, p.SpotID)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preference for user %s spot %d: %w", p.UserID, p.SpotID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set preference in redis: %w", err)
	}
	return nil
}

// GetUserPreference retrieves a user's preference record for one spot,
// nil when none is stored.
func (dao *RedisPreferenceDAO) GetUserPreference(userID string, spotID int64) (*models.Preference, error) {
	key := fmt.Sprintf(USER_SPOT_PREF_KEY_FORMAT_V1, userID, spotID)
	return dao.getPreference(key)
}

// SetLevelSpotPreference stores a spot's default preference record for
// one surf level.
func (dao *RedisPreferenceDAO) SetLevelSpotPreference(level models.SurfLevel, p models.Preference) error {
	key := fmt.Sprintf(LEVEL_SPOT_PREF_KEY_FORMAT_V1, level, p.SpotID)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal level preference for spot %d: %w", p.SpotID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set level preference in redis: %w", err)
	}
	return nil
}

// GetLevelSpotPreference retrieves a spot's default preference record
// for one surf level, nil when none is stored.
func (dao *RedisPreferenceDAO) GetLevelSpotPreference(level models.SurfLevel, spotID int64) (*models.Preference, error) {
	key := fmt.Sprintf(LEVEL_SPOT_PREF_KEY_FORMAT_V1, level, spotID)
	return dao.getPreference(key)
}

// DeleteUserPreference removes a user's preference record for one spot.
func (dao *RedisPreferenceDAO) DeleteUserPreference(userID string, spotID int64) error {
	key := fmt.Sprintf(USER_SPOT_PREF_KEY_FORMAT_V1, userID, spotID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete preference key %s: %w", key, err)
	}
	return nil
}

func (dao *RedisPreferenceDAO) getPreference(key string) (*models.Preference, error) {
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference from redis: %w", err)
	}
	var p models.Preference
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preference JSON: %w", err)
	}
	return &p, nil
}
