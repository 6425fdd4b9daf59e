package middleware

import (
	"strings"

	"peerloan/internal/config"
	"peerloan/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// OptionalAuth validates a bearer token when one is presented and sets
// the caller's identity in the request context. Requests without a
// token pass through untouched; the loan endpoints then fall back to
// the identity claimed in the payload.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Next()
		}

		accessToken := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			return c.Next()
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
