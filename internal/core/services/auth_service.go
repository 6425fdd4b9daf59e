package services

import (
	"context"
	"errors"
	"log"

	"peerloan/internal/adapters/persistence/repositories"
	"peerloan/internal/config"
	"peerloan/internal/core/domain"
	"peerloan/internal/core/validation"
	"peerloan/internal/pkg/jwt"
	"peerloan/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles credential-based login. The hashing strategy is
// injected so the stored scheme can move without touching this code.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   password.Hasher
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, hasher password.Hasher, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		cfg:      cfg,
	}
}

// LoginResult is a successful login outcome. No session is stored;
// the access token is the only thing the caller takes away.
type LoginResult struct {
	User        *domain.UserSummary `json:"user"`
	AccessToken string              `json:"access_token"`
}

// Login validates the payload shape, then matches the credentials
// against the users table for the requested role.
func (s *AuthService) Login(ctx context.Context, p *validation.LoginPayload) (*LoginResult, error) {
	role, err := validation.ValidateLogin(p)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmailAndRole(ctx, p.Email, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(p.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s [%s]", user.Email, user.Role)

	return &LoginResult{
		User:        user.ToSummary(),
		AccessToken: token,
	}, nil
}
