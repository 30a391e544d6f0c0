package middleware

import (
	"finansy/backend/config"
	"finansy/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware проверяет токен сессии устройства.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, err := utils.ExtractUsernameFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals("username", username)
		return c.Next()
	}
}
