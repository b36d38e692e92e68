package repository

import (
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) ListByRestaurant(restaurantID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

func (r *TableRepository) Find(restaurantID, id uint) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByToken resolves the token baked into a QR code.
func (r *TableRepository) FindByToken(token string) (*entity.Table, error) {
	var t entity.Table
	err := r.DB.Where("qr_token = ? AND is_active = ?", token, true).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Update(restaurantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Table{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(updates).Error
}

func (r *TableRepository) Delete(restaurantID, id uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&entity.Table{}).Error
}
