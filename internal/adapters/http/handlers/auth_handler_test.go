package handlers

import (
	"context"
	"testing"

	"peerloan/internal/adapters/persistence/models"
	"peerloan/internal/core/domain"
	"peerloan/internal/core/services"
	"peerloan/internal/pkg/jwt"
	"peerloan/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hasher := &password.Bcrypt{Cost: bcrypt.MinCost}
	hash, err := hasher.Hash("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	userRepo := &mockUserRepo{
		GetByEmailAndRoleFn: func(ctx context.Context, email string, role domain.Role) (*models.User, error) {
			if email == "john@example.com" && role == domain.RoleLender {
				return &models.User{ID: 1, Email: email, Password: hash, Role: string(role), Name: "John"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	authService := services.NewAuthService(userRepo, hasher, testConfig())
	h := NewAuthHandler(authService)

	app := fiber.New()
	app.Post("/api/v1/auth/login", h.Login)
	return app
}

func TestLogin_Success(t *testing.T) {
	app := newAuthApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email": "john@example.com", "password": "secret123", "role": "Lender"}`, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["message"] != "Login successful" {
		t.Fatalf("message = %v", body["message"])
	}

	user, ok := body["user"].(map[string]interface{})
	if !ok || user["email"] != "john@example.com" || user["role"] != "lender" {
		t.Fatalf("user = %v", body["user"])
	}

	token, _ := body["access_token"].(string)
	claims, err := jwt.ValidateAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != 1 {
		t.Fatalf("claims.UserID = %d, want 1", claims.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newAuthApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email": "john@example.com", "password": "nope", "role": "lender"}`, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body["message"] != "User not found or role mismatch" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	app := newAuthApp(t)

	status, _ := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email": "john@example.com", "password": "secret123", "role": "borrower"}`, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
}

func TestLogin_BadEmail(t *testing.T) {
	app := newAuthApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email": "not-an-email", "password": "secret123", "role": "lender"}`, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["message"] != "Invalid email format" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestLogin_UnknownRole(t *testing.T) {
	app := newAuthApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email": "john@example.com", "password": "secret123", "role": "admin"}`, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["message"] != `Role must be either "lender" or "borrower"` {
		t.Fatalf("message = %v", body["message"])
	}
}
