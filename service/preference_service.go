package services

import (
	"errors"
	"time"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models"
	"github.com/Bryanads/thecheckAPI/recommendation"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceService manages stored preference records and resolves the
// full hierarchy for reads.
type PreferenceService struct {
	preferenceDao *redis.RedisPreferenceDAO
	userDao       *redis.RedisUserDAO
}

// NewPreferenceService constructs the service with its DAOs.
func NewPreferenceService(preferenceDao *redis.RedisPreferenceDAO, userDao *redis.RedisUserDAO) *PreferenceService {
	return &PreferenceService{
		preferenceDao: preferenceDao,
		userDao:       userDao,
	}
}

// GetResolvedPreference returns the fully resolved profile for a
// (user, spot) pair. Users without a stored record still get a
// complete profile from the lower tiers.
func (ps *PreferenceService) GetResolvedPreference(userID string, spotID int64) (recommendation.Profile, error) {
	level := models.DefaultSurfLevel
	if userID != "" {
		user, err := ps.userDao.GetUser(userID)
		if err != nil {
			return recommendation.Profile{}, err
		}
		if user != nil && user.SurfLevel.IsValid() {
			level = user.SurfLevel
		}
	}

	var userPref, levelPref *models.Preference
	var err error
	if userID != "" {
		if userPref, err = ps.preferenceDao.GetUserPreference(userID, spotID); err != nil {
			return recommendation.Profile{}, err
		}
	}
	if levelPref, err = ps.preferenceDao.GetLevelSpotPreference(level, spotID); err != nil {
		return recommendation.Profile{}, err
	}

	return recommendation.Resolve(userPref, levelPref, level), nil
}

// SetUserPreference stores a user's preference record. A record
// without an ID gets one derived from the write time.
func (ps *PreferenceService) SetUserPreference(p models.Preference) (models.Preference, error) {
	if p.PreferenceID == 0 {
		p.PreferenceID = time.Now().UnixNano()
	}
	if err := ps.preferenceDao.SetUserPreference(p); err != nil {
		return models.Preference{}, err
	}
	return p, nil
}

// SetPreferenceActive flips the active flag on a stored record. An
// inactive record stays stored but drops out of the resolution
// hierarchy.
func (ps *PreferenceService) SetPreferenceActive(userID string, spotID int64, active bool) (*models.Preference, error) {
	pref, err := ps.preferenceDao.GetUserPreference(userID, spotID)
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return nil, ErrPreferenceNotFound
	}
	pref.IsActive = active
	if err := ps.preferenceDao.SetUserPreference(*pref); err != nil {
		return nil, err
	}
	return pref, nil
}

// DeleteUserPreference removes a user's record for a spot, reverting
// the hierarchy to its default tiers.
func (ps *PreferenceService) DeleteUserPreference(userID string, spotID int64) error {
	return ps.preferenceDao.DeleteUserPreference(userID, spotID)
}

// SetLevelSpotPreference stores a spot's default record for one level.
func (ps *PreferenceService) SetLevelSpotPreference(level models.SurfLevel, p models.Preference) error {
	return ps.preferenceDao.SetLevelSpotPreference(level, p)
}
