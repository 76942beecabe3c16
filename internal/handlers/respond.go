package handlers

import "github.com/gofiber/fiber/v2"

// errorResponse writes the failure envelope every endpoint shares:
// {"result": false, "error_type": ..., "error_message": ...}.
func errorResponse(c *fiber.Ctx, status int, errType, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"result":        false,
		"error_type":    errType,
		"error_message": message,
	})
}
