package admin

import (
	"context"
	"errors"
	"time"

	adminRepo "expertbook/database/repository/admin"
	"expertbook/models"
	"expertbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an admin bearer token stays valid.
const TokenTTL = time.Hour

// Sentinel errors for the admin auth surface.
var (
	ErrAlreadyExists      = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthResponse carries the issued token back to the client.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// AdminService covers admin signup, login and token revocation.
type AdminService interface {
	SignUp(name, email, password string) (*models.Admin, error)
	SignIn(email, password string) (*AuthResponse, error)
	RevokeToken(adminID string) error
}

// DefaultAdminService is the production implementation. Cache may be nil
// when Redis is unavailable; tokens then rely on their signature and expiry
// alone.
type DefaultAdminService struct {
	Repo      adminRepo.AdminRepository
	Cache     *redis.Client
	JWTSecret []byte
}

// SignUp registers a new admin with a bcrypt-hashed password.
func (s *DefaultAdminService) SignUp(name, email, password string) (*models.Admin, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.Create(&models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("admin created", zap.String("adminId", created.ID.Hex()))
	return created, nil
}

// SignIn verifies the password and issues a one-hour bearer token. A SHA-256
// hash of the token is cached in Redis so it can be revoked before expiry.
func (s *DefaultAdminService) SignIn(email, password string) (*AuthResponse, error) {
	admin, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch admin", zap.Error(err))
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.JWTSecret, admin.ID.Hex(), admin.Email, TokenTTL)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		key := utils.AuthCachePrefix + admin.ID.Hex()
		if err := s.Cache.Set(context.Background(), key, utils.HashToken(token), TokenTTL).Err(); err != nil {
			utils.GetLogger().Warn("SignIn: failed to cache token hash", zap.Error(err))
		}
	}

	return &AuthResponse{ID: admin.ID.Hex(), Token: token}, nil
}

// RevokeToken drops the cached token hash so the bearer token stops working
// immediately.
func (s *DefaultAdminService) RevokeToken(adminID string) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Del(context.Background(), utils.AuthCachePrefix+adminID).Err()
}
