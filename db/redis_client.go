package db

import (
	"context"
	"time"
)

// RedisClient defines the methods the storage layer expects from Redis
type RedisClient interface {
	Set(key, value string) error
	SetWithExpiry(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
