package services

import (
	"context"
	"errors"
	"testing"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/config"
	"peerloan/internal/core/domain"
	"peerloan/internal/core/validation"
	"peerloan/internal/pkg/jwt"
	"peerloan/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test-secret", AccessTokenMins: 15},
	}
}

func newAuthService(t *testing.T, storedPassword string) (*AuthService, *models.User) {
	t.Helper()
	hasher := &password.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash(storedPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := &models.User{
		ID:       1,
		Email:    "john@x.com",
		Password: hash,
		Role:     string(domain.RoleLender),
		Name:     "John Doe",
	}
	repo := &mockUserRepo{
		GetByEmailAndRoleFn: func(ctx context.Context, email string, role domain.Role) (*models.User, error) {
			if email == user.Email && role == domain.Role(user.Role) {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	return NewAuthService(repo, hasher, testConfig()), user
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthService(t, "123456")

	res, err := svc.Login(context.Background(), &validation.LoginPayload{
		Email:    "john@x.com",
		Password: "123456",
		Role:     "lender",
	})
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if res.User.Email != "john@x.com" || res.User.Role != "lender" || res.User.Name != "John Doe" {
		t.Fatalf("user summary = %+v", res.User)
	}

	claims, err := jwt.ValidateAccessToken(res.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != 1 || claims.Role != "lender" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLogin_RoleCaseInsensitive(t *testing.T) {
	svc, _ := newAuthService(t, "123456")

	if _, err := svc.Login(context.Background(), &validation.LoginPayload{
		Email:    "john@x.com",
		Password: "123456",
		Role:     "LENDER",
	}); err != nil {
		t.Fatalf("Login err: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(t, "123456")

	_, err := svc.Login(context.Background(), &validation.LoginPayload{
		Email:    "john@x.com",
		Password: "654321",
		Role:     "lender",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	// john is a lender; asking for the borrower role must not match.
	svc, _ := newAuthService(t, "123456")

	_, err := svc.Login(context.Background(), &validation.LoginPayload{
		Email:    "john@x.com",
		Password: "123456",
		Role:     "borrower",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_InvalidPayload(t *testing.T) {
	svc, _ := newAuthService(t, "123456")

	_, err := svc.Login(context.Background(), &validation.LoginPayload{
		Email:    "not-an-email",
		Password: "123456",
		Role:     "lender",
	})
	var ve *validation.Error
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("err = %v, want email format error", err)
	}
}
