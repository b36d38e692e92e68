package repository

import (
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) ListByRestaurant(restaurantID uint) ([]entity.StaffMember, error) {
	var out []entity.StaffMember
	err := r.DB.Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("id").Find(&out).Error
	return out, err
}

func (r *StaffRepository) Find(restaurantID, userID uint) (*entity.StaffMember, error) {
	var m entity.StaffMember
	err := r.DB.Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StaffRepository) Create(tx *gorm.DB, m *entity.StaffMember) error {
	return tx.Create(m).Error
}

func (r *StaffRepository) UpdateRole(restaurantID, memberID uint, role string) error {
	return r.DB.Model(&entity.StaffMember{}).
		Where("id = ? AND restaurant_id = ?", memberID, restaurantID).
		Update("role", role).Error
}

func (r *StaffRepository) Remove(restaurantID, memberID uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", memberID, restaurantID).
		Delete(&entity.StaffMember{}).Error
}

func (r *StaffRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.StaffMember{}).
		Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}
