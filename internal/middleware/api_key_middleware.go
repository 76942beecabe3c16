package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyLocal is the Fiber locals key under which the caller's api key is
// stored for subsequent handlers.
const APIKeyLocal = "api_key"

// APIKeyRequired is a Fiber middleware that requires the opaque `api-key`
// header. The key is not verified here; it is an equality-compared bearer
// token that the services resolve against the user table.
func APIKeyRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("api-key")
		if apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"result":        false,
				"error_type":    "Unauthorized",
				"error_message": "api-key header is required",
			})
		}

		c.Locals(APIKeyLocal, apiKey)
		return c.Next()
	}
}
