package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type RestaurantService struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

type CreateRestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Currency    string `json:"currency"`
}

func (s *RestaurantService) Create(ownerID uint, in *CreateRestaurantIn) (*entity.Restaurant, error) {
	base := utils.Slugify(in.Name)
	if base == "" {
		return nil, errors.New("name yields empty slug")
	}
	slug, err := s.Repo.NextFreeSlug(base)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}

	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Description: in.Description,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Currency:    currency,
		IsOpen:      true,
		OwnerID:     ownerID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}

func (s *RestaurantService) GetBySlug(slug string) (*entity.Restaurant, error) {
	return s.Repo.FindBySlug(slug)
}

func (s *RestaurantService) ListMine(userID uint) ([]entity.Restaurant, error) {
	return s.Repo.ListOwnedBy(userID)
}

func (s *RestaurantService) Update(id uint, updates map[string]any) (*entity.Restaurant, error) {
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

// CanManage: the owner, or staff holding the manager role. Gates the
// menu editor, tables, payment methods, reports and team screens.
func (s *RestaurantService) CanManage(restaurantID, userID uint) (bool, error) {
	owned, err := s.Repo.IsOwnedBy(restaurantID, userID)
	if err != nil {
		return false, err
	}
	if owned {
		return true, nil
	}
	role, err := s.Repo.StaffRole(restaurantID, userID)
	if err != nil {
		return false, err
	}
	return role == "manager", nil
}

// CanWorkKitchen: the owner or any staff member. Gates the kitchen board
// and status transitions.
func (s *RestaurantService) CanWorkKitchen(restaurantID, userID uint) (bool, error) {
	owned, err := s.Repo.IsOwnedBy(restaurantID, userID)
	if err != nil {
		return false, err
	}
	if owned {
		return true, nil
	}
	role, err := s.Repo.StaffRole(restaurantID, userID)
	if err != nil {
		return false, err
	}
	return role != "", nil
}
