package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// GeoRedisClient struct holds the Redis client and context
type GeoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGeoRedisClient initializes a new Redis client with default options
func NewGeoRedisClient(ctx context.Context, client *redis.Client) *GeoRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return &GeoRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *GeoRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithExpiry sets a key-value pair that Redis expires after ttl
func (r *GeoRedisClient) SetWithExpiry(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GeoRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// AddLocationWithJSON stores geolocation along with associated JSON data.
func (r *GeoRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	// Store the geolocation using GEOADD.
	if _, err := r.client.GeoAdd(ctx, geoKey, &redis.GeoLocation{
		Name:      memberKey,
		Latitude:  lat,
		Longitude: lon,
	}).Result(); err != nil {
		return fmt.Errorf("failed to add geolocation: %v", err)
	}

	// Store the JSON data associated with the same member.
	if err := r.client.Set(ctx, memberKey, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to set JSON data: %v", err)
	}

	return nil
}

// GetLocationsWithinRadius finds all members within the given radius and returns their JSON data.
func (r *GeoRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	ctx := r.ctx
	// Use GEORADIUS to find locations within the radius.
	results, err := r.client.GeoRadius(ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius:      radius,
		Unit:        "km",
		WithCoord:   false,
		WithDist:    false,
		WithGeoHash: false,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby locations: %v", err)
	}

	var objects []string
	for _, loc := range results {
		// Fetch the JSON data for each location using its member name.
		data, err := r.client.Get(ctx, loc.Name).Result()
		if err != nil {
			log.Printf("Skipping member %s due to error: %v", loc.Name, err)
			continue
		}
		objects = append(objects, data)
	}

	return objects, nil
}

// Keys returns every key matching the glob pattern
func (r *GeoRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis
func (r *GeoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *GeoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GeoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
