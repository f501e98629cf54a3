package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/models/spot"
)

const SPOTS_GEO_KEY_V1 = "spots_geo_v1"
const SPOTS_GEO_PLACE_MEMBER_FORMAT_V1 = "spots_geo_place_v1:%d"

// RedisSpotDAO handles surf spot operations using Redis.
type RedisSpotDAO struct {
	client db.RedisClient
}

// NewRedisSpotDAO initializes a RedisSpotDAO with the Redis client.
func NewRedisSpotDAO(client db.RedisClient) *RedisSpotDAO {
	return &RedisSpotDAO{client: client}
}

// UpsertSpot stores the spot as a geolocation with the spot's JSON data.
func (dao *RedisSpotDAO) UpsertSpot(s spot.Spot) error {
	ctx := dao.client.GetContext()
	spotKey := fmt.Sprintf(SPOTS_GEO_PLACE_MEMBER_FORMAT_V1, s.SpotID)
	return dao.client.AddLocationWithJSON(ctx, SPOTS_GEO_KEY_V1, spotKey, s.Latitude, s.Longitude, s)
}

// GetSpot retrieves a single spot by its ID.
func (dao *RedisSpotDAO) GetSpot(spotID int64) (*spot.Spot, error) {
	key := fmt.Sprintf(SPOTS_GEO_PLACE_MEMBER_FORMAT_V1, spotID)
	str, err := dao.client.Get(key)
	if err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spot %d from redis: %w", spotID, err)
	}
	var s spot.Spot
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spot JSON: %v", err)
	}
	return &s, nil
}

// GetNearbySpots retrieves nearby spots within a given radius (in km).
func (dao *RedisSpotDAO) GetNearbySpots(lat, lon float64, radius float64) ([]spot.Spot, error) {
	spotsJSON, err := dao.client.GetLocationsWithinRadius(SPOTS_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisSpotDAO] failed to get spots: %v", err)
	}

	spots := make([]spot.Spot, len(spotsJSON))
	for i, spotJSON := range spotsJSON {
		if err := json.Unmarshal([]byte(spotJSON), &spots[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spot JSON: %v", err)
		}
	}
	return spots, nil
}

// ListAllSpotIDs returns all spot IDs present in the geo index.
func (dao *RedisSpotDAO) ListAllSpotIDs() ([]int64, error) {
	pattern := strings.Replace(SPOTS_GEO_PLACE_MEMBER_FORMAT_V1, "%d", "*", 1)
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list spot geo keys: %w", err)
	}
	prefix := strings.Replace(SPOTS_GEO_PLACE_MEMBER_FORMAT_V1, "%d", "", 1)
	ids := make([]int64, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.ParseInt(strings.TrimPrefix(k, prefix), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListAllSpots returns every spot in the geo index.
func (dao *RedisSpotDAO) ListAllSpots() ([]spot.Spot, error) {
	ids, err := dao.ListAllSpotIDs()
	if err != nil {
		return nil, err
	}
	spots := make([]spot.Spot, 0, len(ids))
	for _, id := range ids {
		s, err := dao.GetSpot(id)
		if err != nil {
			return nil, err
		}
		if s != nil {
			spots = append(spots, *s)
		}
	}
	return spots, nil
}
