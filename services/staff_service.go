package services

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

var staffRoles = map[string]bool{"manager": true, "kitchen": true, "waiter": true}

type StaffService struct {
	DB       *gorm.DB
	Repo     *repository.StaffRepository
	UserRepo *repository.UserRepository
	Settings *repository.SettingsRepository
}

func NewStaffService(db *gorm.DB, repo *repository.StaffRepository, userRepo *repository.UserRepository, settings *repository.SettingsRepository) *StaffService {
	return &StaffService{DB: db, Repo: repo, UserRepo: userRepo, Settings: settings}
}

type AddStaffIn struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type AddStaffOut struct {
	Member *entity.StaffMember `json:"member"`

	// set only when the account was created here; shown to the owner once
	TempPassword string `json:"tempPassword,omitempty"`
}

// Add attaches a user to the restaurant's team by email, creating the
// account with a one-time password when it does not exist yet.
func (s *StaffService) Add(restaurantID uint, in *AddStaffIn) (*AddStaffOut, error) {
	if !staffRoles[in.Role] {
		return nil, errors.New("invalid role")
	}

	if max := s.maxStaff(); max > 0 {
		count, err := s.Repo.CountByRestaurant(restaurantID)
		if err != nil {
			return nil, err
		}
		if count >= max {
			return nil, errors.New("staff limit reached")
		}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	out := &AddStaffOut{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		user, err := s.UserRepo.FindByEmail(email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			temp, terr := utils.RandomToken(8)
			if terr != nil {
				return terr
			}
			hashed, terr := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
			if terr != nil {
				return terr
			}
			user = &entity.User{Email: email, Password: string(hashed), Role: "staff"}
			if terr := tx.Create(user).Error; terr != nil {
				return terr
			}
			out.TempPassword = temp
		} else if err != nil {
			return err
		}

		if _, err := s.Repo.Find(restaurantID, user.ID); err == nil {
			return errors.New("already a member")
		}

		member := &entity.StaffMember{
			RestaurantID: restaurantID,
			UserID:       user.ID,
			Role:         in.Role,
		}
		if err := s.Repo.Create(tx, member); err != nil {
			return err
		}
		member.User = *user
		out.Member = member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StaffService) List(restaurantID uint) ([]entity.StaffMember, error) {
	return s.Repo.ListByRestaurant(restaurantID)
}

func (s *StaffService) UpdateRole(restaurantID, memberID uint, role string) error {
	if !staffRoles[role] {
		return errors.New("invalid role")
	}
	return s.Repo.UpdateRole(restaurantID, memberID, role)
}

func (s *StaffService) Remove(restaurantID, memberID uint) error {
	return s.Repo.Remove(restaurantID, memberID)
}

func (s *StaffService) maxStaff() int64 {
	setting, err := s.Settings.Get("max_staff_members")
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(setting.Value)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
