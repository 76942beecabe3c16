package repositories

import "chirp/internal/models"

// TweetRepository defines the interface for tweet and like-edge data access.
type TweetRepository interface {
	Create(tweet *models.Tweet) error
	GetByID(id uint) (*models.Tweet, error)
	GetWithAuthor(id uint) (*models.Tweet, error)
	// ListByAuthor returns the user's tweets in insertion order with Author
	// and LikedBy eagerly loaded, so rendering needs no per-tweet lookups.
	ListByAuthor(userID uint) ([]models.Tweet, error)
	// Delete removes the tweet and its like edges in one transaction.
	Delete(tweet *models.Tweet) error
	AddLike(tweet *models.Tweet, user *models.User) error
	RemoveLike(tweet *models.Tweet, user *models.User) error
}
