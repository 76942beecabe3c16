package services

import (
	"fmt"

	"chirp/internal/models"
	"chirp/internal/repositories"
)

// MediaService handles image blob storage. Images are created independently
// of tweets and referenced from them by id only.
type MediaService struct {
	imageRepo repositories.ImageRepository
}

// NewMediaService creates a new MediaService.
func NewMediaService(imageRepo repositories.ImageRepository) *MediaService {
	return &MediaService{
		imageRepo: imageRepo,
	}
}

// StoreImage saves the raw bytes and returns the new image id.
func (s *MediaService) StoreImage(data []byte) (uint, error) {
	image := &models.Image{Data: data}
	if err := s.imageRepo.Create(image); err != nil {
		return 0, fmt.Errorf("failed to store image: %w", err)
	}
	return image.ID, nil
}

// FetchImage returns the stored image by id.
func (s *MediaService) FetchImage(id uint) (*models.Image, error) {
	return s.imageRepo.GetByID(id)
}
