package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
)

type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo}
}

// ---------------- categories ----------------

type CategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (s *MenuService) CreateCategory(restaurantID uint, in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{RestaurantID: restaurantID, Name: in.Name, SortOrder: in.SortOrder}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) ListCategories(restaurantID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(restaurantID)
}

func (s *MenuService) UpdateCategory(restaurantID, id uint, updates map[string]any) error {
	return s.Repo.UpdateCategory(restaurantID, id, updates)
}

func (s *MenuService) DeleteCategory(restaurantID, id uint) error {
	return s.Repo.DeleteCategory(restaurantID, id)
}

// ---------------- menu items ----------------

type MenuItemIn struct {
	Name       string `json:"name" binding:"required"`
	Detail     string `json:"detail"`
	Price      int64  `json:"price" binding:"min=0"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

func (s *MenuService) CreateItem(restaurantID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	cats, err := s.Repo.ListCategories(restaurantID)
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range cats {
		if c.ID == in.CategoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("category not in this restaurant")
	}

	item := &entity.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Detail:       in.Detail,
		Price:        in.Price,
		IsAvailable:  true,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) ListItems(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListItems(restaurantID)
}

func (s *MenuService) UpdateItem(restaurantID, id uint, updates map[string]any) error {
	return s.Repo.UpdateItem(restaurantID, id, updates)
}

func (s *MenuService) DeleteItem(restaurantID, id uint) error {
	return s.Repo.DeleteItem(restaurantID, id)
}

// ---------------- options ----------------

type OptionIn struct {
	Name       string `json:"name" binding:"required"`
	OptionType string `json:"optionType" binding:"required,oneof=size extra"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`
}

func (s *MenuService) CreateOption(restaurantID uint, in *OptionIn) (*entity.Option, error) {
	maxSelect := in.MaxSelect
	if in.OptionType == entity.OptionTypeSize {
		// a size is always a single choice
		maxSelect = 1
	}
	o := &entity.Option{
		RestaurantID: restaurantID,
		Name:         in.Name,
		OptionType:   in.OptionType,
		MinSelect:    in.MinSelect,
		MaxSelect:    maxSelect,
		IsRequired:   in.IsRequired,
		SortOrder:    in.SortOrder,
	}
	if err := s.Repo.CreateOption(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *MenuService) ListOptions(restaurantID uint) ([]entity.Option, error) {
	return s.Repo.ListOptions(restaurantID)
}

func (s *MenuService) UpdateOption(restaurantID, id uint, updates map[string]any) error {
	return s.Repo.UpdateOption(restaurantID, id, updates)
}

func (s *MenuService) DeleteOption(restaurantID, id uint) error {
	return s.Repo.DeleteOption(restaurantID, id)
}

type OptionValueIn struct {
	Name          string `json:"name" binding:"required"`
	PriceDelta    int64  `json:"priceDelta"`
	DefaultSelect bool   `json:"defaultSelect"`
	SortOrder     int    `json:"sortOrder"`
}

func (s *MenuService) CreateOptionValue(restaurantID, optionID uint, in *OptionValueIn) (*entity.OptionValue, error) {
	opts, err := s.Repo.ListOptions(restaurantID)
	if err != nil {
		return nil, err
	}
	owned := false
	for _, o := range opts {
		if o.ID == optionID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, errors.New("option not in this restaurant")
	}

	v := &entity.OptionValue{
		OptionID:      optionID,
		Name:          in.Name,
		PriceDelta:    in.PriceDelta,
		DefaultSelect: in.DefaultSelect,
		IsAvailable:   true,
		SortOrder:     in.SortOrder,
	}
	if err := s.Repo.CreateOptionValue(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *MenuService) UpdateOptionValue(restaurantID, id uint, updates map[string]any) error {
	return s.Repo.UpdateOptionValue(restaurantID, id, updates)
}

func (s *MenuService) DeleteOptionValue(restaurantID, id uint) error {
	return s.Repo.DeleteOptionValue(restaurantID, id)
}

// AttachOption links an option group to a menu item, both restaurant-scoped.
func (s *MenuService) AttachOption(restaurantID, itemID, optionID uint, sortOrder int) error {
	item, err := s.Repo.GetItemBasics(itemID)
	if err != nil || item.RestaurantID != restaurantID {
		return errors.New("menu item not in this restaurant")
	}
	opts, err := s.Repo.ListOptions(restaurantID)
	if err != nil {
		return err
	}
	for _, o := range opts {
		if o.ID == optionID {
			return s.Repo.AttachOption(itemID, optionID, sortOrder)
		}
	}
	return errors.New("option not in this restaurant")
}

func (s *MenuService) DetachOption(restaurantID, itemID, optionID uint) error {
	item, err := s.Repo.GetItemBasics(itemID)
	if err != nil || item.RestaurantID != restaurantID {
		return errors.New("menu item not in this restaurant")
	}
	return s.Repo.DetachOption(itemID, optionID)
}

// PublicMenu is the guest-facing tree for one restaurant.
func (s *MenuService) PublicMenu(restaurantID uint) ([]repository.PublicCategory, error) {
	return s.Repo.MenuTree(restaurantID)
}
