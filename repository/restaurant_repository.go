package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) ListOwnedBy(userID uint) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("owner_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) IsOwnedBy(restaurantID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restaurantID, userID).
		Count(&count).Error
	return count > 0, err
}

// StaffRole returns the membership role, or "" when the user is not staff.
func (r *RestaurantRepository) StaffRole(restaurantID, userID uint) (string, error) {
	var m entity.StaffMember
	err := r.DB.Select("role").
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.Role, nil
}

func (r *RestaurantRepository) SlugTaken(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// NextFreeSlug appends -2, -3, ... until the slug is unused.
func (r *RestaurantRepository) NextFreeSlug(base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := r.SlugTaken(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// GET /admin/restaurants
type RestaurantSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   uint      `json:"ownerId"`
	IsOpen    bool      `json:"isOpen"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *RestaurantRepository) ListAll(page, limit int) ([]RestaurantSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []RestaurantSummary
	err := r.DB.Model(&entity.Restaurant{}).
		Select("id, name, slug, owner_id, is_open, created_at").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}
