package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserService manages account profiles.
type UserService struct {
	userDao *redis.RedisUserDAO
}

// NewUserService constructs the service with its DAO.
func NewUserService(userDao *redis.RedisUserDAO) *UserService {
	return &UserService{userDao: userDao}
}

// CreateUser stores a new profile. The ID and creation time are
// assigned here; an invalid or empty surf level falls back to the
// default tier.
func (us *UserService) CreateUser(u models.User) (models.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	if !u.SurfLevel.IsValid() {
		u.SurfLevel = models.DefaultSurfLevel
	}
	if err := us.userDao.UpsertUser(u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUser returns a profile by ID.
func (us *UserService) GetUser(userID string) (*models.User, error) {
	return us.userDao.GetUser(userID)
}

// UpdateProfile applies the set fields of an update to a stored
// profile.
func (us *UserService) UpdateProfile(userID string, update models.ProfileUpdate) (*models.User, error) {
	user, err := us.userDao.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.SurfLevel != nil {
		user.SurfLevel = models.ParseSurfLevel(*update.SurfLevel)
	}
	if update.Stance != nil {
		user.Stance = *update.Stance
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	if err := us.userDao.UpsertUser(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a profile.
func (us *UserService) DeleteUser(userID string) error {
	return us.userDao.DeleteUser(userID)
}
