package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"chirp/internal/middleware"
	"chirp/internal/services"
)

// TweetHandler handles HTTP requests for tweets, likes and the tape.
type TweetHandler struct {
	tweetService *services.TweetService
	feedService  *services.FeedService
	validate     *validator.Validate
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(tweetService *services.TweetService, feedService *services.FeedService) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
		feedService:  feedService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the tweet routes with the Fiber app. All of them
// require the api-key header.
func (h *TweetHandler) RegisterRoutes(router fiber.Router) {
	tweets := router.Group("/tweets", middleware.APIKeyRequired())
	tweets.Get("/", h.HandleGetTape)
	tweets.Post("/", h.HandlePostTweet)
	tweets.Delete("/:id", h.HandleDeleteTweet)
	tweets.Post("/:id/likes", h.HandleLike)
	tweets.Delete("/:id/likes", h.HandleUnlike)
}

// TweetRequest represents the request body for posting a tweet. Empty content
// and an empty attachment list are both allowed.
type TweetRequest struct {
	TweetData     string  `json:"tweet_data" validate:"max=300"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

// HandleGetTape returns the caller's assembled feed.
func (h *TweetHandler) HandleGetTape(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)

	tape, err := h.feedService.GetTape(apiKey)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error assembling tape: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not assemble tape")
	}
	return c.JSON(tape)
}

// HandlePostTweet creates a new tweet for the caller.
func (h *TweetHandler) HandlePostTweet(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)

	var req TweetRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing tweet request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", fmt.Sprintf("validation failed: %v", messages))
	}

	tweetID, err := h.tweetService.PostTweet(apiKey, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error posting tweet: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not post tweet")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":   true,
		"tweet_id": tweetID,
	})
}

// HandleDeleteTweet deletes the caller's own tweet. Deleting somebody else's
// tweet is rejected with 409 and leaves the tweet intact.
func (h *TweetHandler) HandleDeleteTweet(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid tweet id")
	}

	if err := h.tweetService.DeleteTweet(apiKey, uint(id)); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return errorResponse(c, fiber.StatusConflict, "ValidationException", "Cannot delete someone else's tweet")
		}
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error deleting tweet %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not delete tweet")
	}
	return c.JSON(fiber.Map{"result": true})
}

// HandleLike records the caller's like on a tweet.
func (h *TweetHandler) HandleLike(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid tweet id")
	}

	if err := h.tweetService.Like(apiKey, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error liking tweet %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not like tweet")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"result": true})
}

// HandleUnlike removes the caller's like. Unliking a tweet that was never
// liked still succeeds.
func (h *TweetHandler) HandleUnlike(c *fiber.Ctx) error {
	apiKey := c.Locals(middleware.APIKeyLocal).(string)
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid tweet id")
	}

	if err := h.tweetService.Unlike(apiKey, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error unliking tweet %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not unlike tweet")
	}
	return c.JSON(fiber.Map{"result": true})
}
