package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
)

// UserIDKey is the Locals key under which the authenticated user id is stored
const UserIDKey = "user_id"

// JWTProtected guards the management API. Public survey routes never pass
// through here; anonymous respondents carry no token.
func JWTProtected(auth *usecases.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or malformed token"})
		}

		userID, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
