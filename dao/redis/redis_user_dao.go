package redis

import (
	"encoding/json"
	"fmt"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models"
)

const USER_KEY_FORMAT_V1 = "user_v1:%s"

// RedisUserDAO handles user profile operations using Redis.
type RedisUserDAO struct {
	client db.RedisClient
}

// NewRedisUserDAO initializes a RedisUserDAO with the Redis client.
func NewRedisUserDAO(client db.RedisClient) *RedisUserDAO {
	return &RedisUserDAO{client: client}
}

// UpsertUser stores a user profile.
func (dao *RedisUserDAO) UpsertUser(u models.User) error {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, u.ID)
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", u.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set user in redis: %w", err)
	}
	return nil
}

// GetUser retrieves a user profile by ID, nil when none is stored.
func (dao *RedisUserDAO) GetUser(userID string) (*models.User, error) {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, userID)
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user from redis: %w", err)
	}
	var u models.User
	if err := json.Unmarshal([]byte(str), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user JSON: %w", err)
	}
	return &u, nil
}

// DeleteUser removes a user profile.
func (dao *RedisUserDAO) DeleteUser(userID string) error {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, userID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete user key %s: %w", key, err)
	}
	return nil
}
