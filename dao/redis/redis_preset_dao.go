package redis

import (
	"encoding/json"
	"fmt"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
)

const PRESET_KEY_FORMAT_V1 = "preset_v1:%s_%s"

// RedisPresetDAO stores saved recommendation presets per user.
type RedisPresetDAO struct {
	client db.RedisClient
}

// NewRedisPresetDAO initializes a RedisPresetDAO with the Redis client.
func NewRedisPresetDAO(client db.RedisClient) *RedisPresetDAO {
	return &RedisPresetDAO{client: client}
}

// UpsertPreset stores a preset under its owner.
func (dao *RedisPresetDAO) UpsertPreset(p models.Preset) error {
	key := fmt.Sprintf(PRESET_KEY_FORMAT_V1, p.UserID, p.PresetID)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preset %s: %w", p.PresetID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set preset in redis: %w", err)
	}
	return nil
}

// GetPreset retrieves one of a user's presets, nil when none is stored.
func (dao *RedisPresetDAO) GetPreset(userID, presetID string) (*models.Preset, error) {
	key := fmt.Sprintf(PRESET_KEY_FORMAT_V1, userID, presetID)
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preset from redis: %w", err)
	}
	var p models.Preset
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset JSON: %w", err)
	}
	return &p, nil
}

// ListPresets returns all presets stored for a user.
func (dao *RedisPresetDAO) ListPresets(userID string) ([]models.Preset, error) {
	pattern := fmt.Sprintf(PRESET_KEY_FORMAT_V1, userID, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list preset keys: %w", err)
	}

	presets := make([]models.Preset, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			if isMiss(err) {
				continue
			}
			return nil, fmt.Errorf("failed to get preset from redis: %w", err)
		}
		var p models.Preset
		if err := json.Unmarshal([]byte(str), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preset JSON: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// DeletePreset removes one of a user's presets.
func (dao *RedisPresetDAO) DeletePreset(userID, presetID string) error {
	key := fmt.Sprintf(PRESET_KEY_FORMAT_V1, userID, presetID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete preset key %s: %w", key, err)
	}
	return nil
}
