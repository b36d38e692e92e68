package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

// AdminService backs the platform panel: user listing, restaurant
// listing and platform settings.
type AdminService struct {
	UserRepo *repository.UserRepository
	RestRepo *repository.RestaurantRepository
	Settings *repository.SettingsRepository
}

func NewAdminService(userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository, settings *repository.SettingsRepository) *AdminService {
	return &AdminService{UserRepo: userRepo, RestRepo: restRepo, Settings: settings}
}

func (s *AdminService) ListUsers(page, limit int) ([]repository.UserSummary, int64, error) {
	return s.UserRepo.ListUsers(page, limit)
}

func (s *AdminService) ListRestaurants(page, limit int) ([]repository.RestaurantSummary, int64, error) {
	return s.RestRepo.ListAll(page, limit)
}

func (s *AdminService) AllSettings() ([]entity.PlatformSetting, error) {
	return s.Settings.All()
}

// UpdateSetting accepts any valid JSON value.
func (s *AdminService) UpdateSetting(key string, value json.RawMessage) error {
	if key == "" {
		return errors.New("key is required")
	}
	if !json.Valid(value) {
		return errors.New("value must be valid JSON")
	}
	return s.Settings.Upsert(key, datatypes.JSON(value))
}
