package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", hashed).Error
}

// GET /admin/users
type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *UserRepository) ListUsers(page, limit int) ([]UserSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := r.DB.Model(&entity.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []UserSummary
	err := r.DB.Model(&entity.User{}).
		Select("id, email, first_name, last_name, role, created_at").
		Order("id DESC").
		Offset((page - 1) * limit).Limit(limit).
		Scan(&out).Error
	return out, total, err
}

// ---------------- password resets ----------------

func (r *UserRepository) CreateReset(reset *entity.PasswordReset) error {
	return r.DB.Create(reset).Error
}

func (r *UserRepository) FindActiveReset(token string) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.DB.Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *UserRepository) MarkResetUsed(tx *gorm.DB, id uint) error {
	now := time.Now()
	return tx.Model(&entity.PasswordReset{}).Where("id = ?", id).Update("used_at", now).Error
}
