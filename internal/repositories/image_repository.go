package repositories

import "chirp/internal/models"

// ImageRepository defines the interface for media blob data access.
type ImageRepository interface {
	Create(image *models.Image) error
	GetByID(id uint) (*models.Image, error)
}
