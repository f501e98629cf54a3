package services

import (
	"log"

	"github.com/Bryanads/thecheckAPI/config"
	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models/spot"
	"github.com/Bryanads/thecheckAPI/util"
)

type SpotService struct {
	spotDao *redis.RedisSpotDAO
}

// NewSpotService constructs a new SpotService with Redis dependency injection.
func NewSpotService(spotDao *redis.RedisSpotDAO) *SpotService {
	return &SpotService{spotDao: spotDao}
}

func (ss *SpotService) GetSpotsNearby(lat, lon, radius float64) ([]spot.Spot, error) {
	return ss.spotDao.GetNearbySpots(lat, lon, radius)
}

func (ss *SpotService) GetSpot(spotID int64) (*spot.Spot, error) {
	return ss.spotDao.GetSpot(spotID)
}

func (ss *SpotService) ListSpots() ([]spot.Spot, error) {
	return ss.spotDao.ListAllSpots()
}

// SeedSpotCatalog loads the static spot catalog from disk and upserts
// every entry. Called once at startup; existing spots are overwritten
// with the catalog values.
func (ss *SpotService) SeedSpotCatalog() error {
	spots, err := util.ReadSpotsFromJSON(config.GetResourcePath(config.SPOTS_RESOURCE))
	if err != nil {
		return err
	}
	for _, s := range spots {
		if err := ss.spotDao.UpsertSpot(s); err != nil {
			log.Printf("[SpotService] Upsert failed for spot %d: %v", s.SpotID, err)
			continue
		}
	}
	log.Printf("[SpotService] Seeded %d spots from catalog", len(spots))
	return nil
}
