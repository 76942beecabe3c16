package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"chirp/internal/middleware"
	"chirp/internal/services"
)

// UserHandler handles HTTP requests for profiles and the follow graph.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/me", middleware.APIKeyRequired(), h.HandleGetOwnProfile)
	users.Get("/:id", h.HandleGetProfile)
	users.Post("/:id/follow", middleware.APIKeyRequired(), h.HandleFollow)
	users.Delete("/:id/follow", middleware.APIKeyRequired(), h.HandleUnfollow)
}

// HandleGetOwnProfile returns the caller's own profile, registering the api
// key on first contact.
func (h *UserHandler) HandleGetOwnProfile(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)

	if _, err := h.userService.EnsureRegistered(apiKey); err != nil {
		log.Printf("Error registering user: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not register user")
	}

	profile, err := h.userService.GetProfileByAPIKey(apiKey)
	if err != nil {
		log.Printf("Error getting own profile: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not load profile")
	}
	return c.JSON(profile)
}

// HandleGetProfile returns any user's profile by numeric id. No api key is
// required; profiles are public.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid user id")
	}

	profile, err := h.userService.GetProfileByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error getting profile of user %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not load profile")
	}
	return c.JSON(profile)
}

// HandleFollow subscribes the caller to the target user.
func (h *UserHandler) HandleFollow(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid user id")
	}

	if err := h.userService.Follow(apiKey, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error following user %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not follow user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"result": true})
}

// HandleUnfollow removes the caller's subscription to the target user.
// Unfollowing someone the caller never followed still succeeds.
func (h *UserHandler) HandleUnfollow(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid user id")
	}

	if err := h.userService.Unfollow(apiKey, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error unfollowing user %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not unfollow user")
	}
	return c.JSON(fiber.Map{"result": true})
}
