package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"chirp/internal/services"
)

// MediaHandler handles HTTP requests for image upload and retrieval.
type MediaHandler struct {
	mediaService *services.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// RegisterRoutes registers the media routes with the Fiber app. Media routes
// are public: uploads happen before the tweet referencing them exists.
func (h *MediaHandler) RegisterRoutes(router fiber.Router) {
	medias := router.Group("/medias")
	medias.Post("/", h.HandleUploadImage)
	medias.Get("/:id", h.HandleGetImage)
}

// HandleUploadImage stores a multipart "file" upload and returns its id.
func (h *MediaHandler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "could not read uploaded file")
	}

	mediaID, err := h.mediaService.StoreImage(data)
	if err != nil {
		log.Printf("Error storing image: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not store image")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":   true,
		"media_id": mediaID,
	})
}

// HandleGetImage returns the stored image bytes.
func (h *MediaHandler) HandleGetImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return errorResponse(c, fiber.StatusBadRequest, "ValidationException", "invalid image id")
	}

	image, err := h.mediaService.FetchImage(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NotFound", err.Error())
		}
		log.Printf("Error fetching image %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "could not fetch image")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(image.Data)
}
