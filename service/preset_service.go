package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models"
)

var ErrPresetNotFound = errors.New("preset not found")

// PresetService manages saved recommendation presets. At most one
// preset per user is the default.
type PresetService struct {
	presetDao *redis.RedisPresetDAO
}

// NewPresetService constructs the service with its DAO.
func NewPresetService(presetDao *redis.RedisPresetDAO) *PresetService {
	return &PresetService{presetDao: presetDao}
}

// CreatePreset stores a new preset, assigning its ID. Marking it
// default demotes the user's previous default.
func (ps *PresetService) CreatePreset(p models.Preset) (models.Preset, error) {
	p.PresetID = uuid.NewString()
	if p.IsDefault {
		if err := ps.demoteDefault(p.UserID); err != nil {
			return models.Preset{}, err
		}
	}
	if err := ps.presetDao.UpsertPreset(p); err != nil {
		return models.Preset{}, err
	}
	return p, nil
}

// UpdatePreset overwrites an existing preset.
func (ps *PresetService) UpdatePreset(p models.Preset) (models.Preset, error) {
	existing, err := ps.presetDao.GetPreset(p.UserID, p.PresetID)
	if err != nil {
		return models.Preset{}, err
	}
	if existing == nil {
		return models.Preset{}, ErrPresetNotFound
	}
	if p.IsDefault && !existing.IsDefault {
		if err := ps.demoteDefault(p.UserID); err != nil {
			return models.Preset{}, err
		}
	}
	if err := ps.presetDao.UpsertPreset(p); err != nil {
		return models.Preset{}, err
	}
	return p, nil
}

// GetPreset returns one of a user's presets.
func (ps *PresetService) GetPreset(userID, presetID string) (*models.Preset, error) {
	return ps.presetDao.GetPreset(userID, presetID)
}

// ListPresets returns all of a user's presets.
func (ps *PresetService) ListPresets(userID string) ([]models.Preset, error) {
	return ps.presetDao.ListPresets(userID)
}

// GetDefaultPreset returns the user's default preset, nil when none is
// marked.
func (ps *PresetService) GetDefaultPreset(userID string) (*models.Preset, error) {
	presets, err := ps.presetDao.ListPresets(userID)
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].IsDefault {
			return &presets[i], nil
		}
	}
	return nil, nil
}

// DeletePreset removes one of a user's presets.
func (ps *PresetService) DeletePreset(userID, presetID string) error {
	return ps.presetDao.DeletePreset(userID, presetID)
}

func (ps *PresetService) demoteDefault(userID string) error {
	current, err := ps.GetDefaultPreset(userID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	current.IsDefault = false
	return ps.presetDao.UpsertPreset(*current)
}
