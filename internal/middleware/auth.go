package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rezan-m/NutriPlanBack/pkg/utils"
)

// AuthRequired guards the /api/v1 surface. Tokens are minted by the external
// identity service; this middleware only verifies them and exposes the
// caller's identity as the user_id and role request locals that every
// handler reads through parseUserID.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing bearer token",
			})
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
