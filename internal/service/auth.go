package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel_booking/internal/domain"
	"hotel_booking/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies admin credentials and issues bearer tokens
type AuthService struct {
	DB       *gorm.DB
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Secret: secret, TokenTTL: ttl}
}

// VerifyCredentials returns the admin when the password matches its bcrypt hash
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	user, err := s.FindAdmin(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an access token for the admin
func (s *AuthService) IssueToken(user *domain.AdminUser) (string, error) {
	return utils.GenerateJWT(user.Username, s.Secret, s.TokenTTL)
}

// ResolveToken returns the username carried by a valid token
func (s *AuthService) ResolveToken(token string) (string, error) {
	return utils.ParseJWT(token, s.Secret)
}

// FindAdmin loads an admin by username
func (s *AuthService) FindAdmin(ctx context.Context, username string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "Admin user", Err: err}
		}
		return nil, domain.InternalError{Msg: "Failed to fetch admin user", Err: err}
	}
	return &user, nil
}

// CreateAdmin hashes the password and stores a new admin user
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ValidationError{Field: "username", Msg: "cannot be empty"}
	}
	if password == "" {
		return nil, domain.ValidationError{Field: "password", Msg: "cannot be empty"}
	}

	var user *domain.AdminUser
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&domain.AdminUser{}).Where("username = ?", username).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.ConflictError{Resource: "admin user", Msg: "Admin user '" + username + "' already exists."}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := domain.AdminUser{Username: username, HashedPassword: string(hash)}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		user = &u
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, domain.InternalError{Msg: "Failed to create admin user", Err: err}
	}
	logrus.WithFields(logrus.Fields{"admin_id": user.ID, "username": user.Username}).Info("Admin user created")
	return user, nil
}
