package handlers

import (
	"errors"

	"peerloan/internal/core/domain"
	"peerloan/internal/core/services"
	"peerloan/internal/core/validation"
	"peerloan/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles credential login
// @Summary Login user
// @Description Authenticate a lender or borrower by email, password and role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.LoginPayload true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var p validation.LoginPayload
	if err := c.BodyParser(&p); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.Context(), &p)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			return response.BadRequest(c, vErr.Message)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "User not found or role mismatch")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"user":         result.User,
		"access_token": result.AccessToken,
	})
}
