package repository

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) All() ([]entity.PlatformSetting, error) {
	var out []entity.PlatformSetting
	err := r.DB.Order("key").Find(&out).Error
	return out, err
}

func (r *SettingsRepository) Get(key string) (*entity.PlatformSetting, error) {
	var s entity.PlatformSetting
	if err := r.DB.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(key string, value datatypes.JSON) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entity.PlatformSetting{Key: key, Value: value}).Error
}
