package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

type TableService struct {
	DB       *gorm.DB
	Repo     *repository.TableRepository
	RestRepo *repository.RestaurantRepository

	publicBaseURL string
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository, restRepo *repository.RestaurantRepository, publicBaseURL string) *TableService {
	return &TableService{DB: db, Repo: repo, RestRepo: restRepo, publicBaseURL: publicBaseURL}
}

func (s *TableService) Create(restaurantID uint, label string) (*entity.Table, error) {
	t := &entity.Table{
		RestaurantID: restaurantID,
		Label:        label,
		QRToken:      uuid.NewString(),
		IsActive:     true,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) List(restaurantID uint) ([]entity.Table, error) {
	return s.Repo.ListByRestaurant(restaurantID)
}

func (s *TableService) Update(restaurantID, id uint, updates map[string]any) error {
	return s.Repo.Update(restaurantID, id, updates)
}

func (s *TableService) Delete(restaurantID, id uint) error {
	return s.Repo.Delete(restaurantID, id)
}

// RotateToken invalidates every printed QR for the table.
func (s *TableService) RotateToken(restaurantID, id uint) (*entity.Table, error) {
	if err := s.Repo.Update(restaurantID, id, map[string]any{"qr_token": uuid.NewString()}); err != nil {
		return nil, err
	}
	return s.Repo.Find(restaurantID, id)
}

// DeepLink is the URL baked into the table's QR code.
func (s *TableService) DeepLink(restaurantID, id uint) (string, error) {
	t, err := s.Repo.Find(restaurantID, id)
	if err != nil {
		return "", err
	}
	rest, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/m/%s?t=%s", s.publicBaseURL, rest.Slug, t.QRToken), nil
}

// QRCodePNG renders the printable QR image for one table.
func (s *TableService) QRCodePNG(restaurantID, id uint, size int) ([]byte, error) {
	link, err := s.DeepLink(restaurantID, id)
	if err != nil {
		return nil, err
	}
	return utils.TableQRPNG(link, size)
}
