package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
// Expiry is honored lazily: expired keys disappear on the next read.
type MockRedisClient struct {
	data    map[string]string            // Key-value store
	expiry  map[string]time.Time         // Expiration deadlines, absent means no TTL
	geoData map[string]map[string]GeoLoc // Geolocation data
	mu      sync.RWMutex                 // Mutex for thread-safe operations
	context context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expiry:  make(map[string]time.Time),
		geoData: make(map[string]map[string]GeoLoc),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expiry, key)
	return nil
}

// SetWithExpiry stores a key-value pair with a TTL in the mock Redis.
func (m *MockRedisClient) SetWithExpiry(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.expiry[key] = time.Now().Add(ttl)
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expired(key) {
		delete(m.data, key)
		delete(m.expiry, key)
	}
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}

	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius retrieves JSON data for members within a given radius.
// The mock returns every member of the geo set regardless of distance.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil // No geolocation data for this key.
	}

	var results []string
	for memberKey := range geoMembers {
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Keys returns every live key matching the glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for key := range m.data {
		if m.expired(key) {
			continue
		}
		matched, err := path.Match(pattern, key)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
		}
		if matched {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expiry, key)
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

// expired reports whether the key has a passed deadline. Caller holds
// at least a read lock.
func (m *MockRedisClient) expired(key string) bool {
	deadline, ok := m.expiry[key]
	return ok && time.Now().After(deadline)
}
