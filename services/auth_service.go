package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
)

// AuthService handles sign up / sign in and the password flows.
type AuthService struct {
	DB       *gorm.DB
	userRepo *repository.UserRepository

	jwtSecret string
	jwtTTL    time.Duration

	publicBaseURL string
	mail          utils.MailConfig
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration, publicBaseURL string, mail utils.MailConfig) *AuthService {
	return &AuthService{
		DB:            db,
		userRepo:      repo,
		jwtSecret:     secret,
		jwtTTL:        ttl,
		publicBaseURL: publicBaseURL,
		mail:          mail,
	}
}

// Register provisions an owner account in one transaction and returns
// the complete record; there is nothing asynchronous to wait for.
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "owner",
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

// ChangePassword requires the current password.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return errors.New("invalid credentials")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}

// RequestPasswordReset mails a one-time link. An unknown email returns
// nil so callers cannot probe for accounts.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil
	}

	token, err := utils.RandomToken(32)
	if err != nil {
		return err
	}

	reset := &entity.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.userRepo.CreateReset(reset); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/reset-password?token=%s", s.publicBaseURL, token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You requested a password reset. The link below is valid for one hour.</p><p><a href=%q>Reset password</a></p>",
		user.FirstName, link,
	)
	return utils.SendMail(s.mail, user.Email, "MenuStream password reset", body)
}

// ResetPassword burns the token and sets the new password in one tx.
func (s *AuthService) ResetPassword(token, next string) error {
	reset, err := s.userRepo.FindActiveReset(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.MarkResetUsed(tx, reset.ID); err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("id = ?", reset.UserID).
			Update("password", string(hashed)).Error
	})
}
