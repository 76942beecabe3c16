package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// GORMTweetRepository is a GORM implementation of TweetRepository.
type GORMTweetRepository struct {
	db *gorm.DB
}

// NewGORMTweetRepository creates a new instance of GORMTweetRepository.
func NewGORMTweetRepository(db *gorm.DB) *GORMTweetRepository {
	return &GORMTweetRepository{
		db: db,
	}
}

// Create inserts a new tweet and fills in its generated id.
func (r *GORMTweetRepository) Create(tweet *models.Tweet) error {
	if err := r.db.Create(tweet).Error; err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetByID retrieves a single tweet by its ID.
func (r *GORMTweetRepository) GetByID(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tweet with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tweet by ID %d: %w", id, err)
	}
	return &tweet, nil
}

// GetWithAuthor retrieves a tweet with its author row loaded.
func (r *GORMTweetRepository) GetWithAuthor(id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.Preload("Author").First(&tweet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tweet with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tweet with author by ID %d: %w", id, err)
	}
	return &tweet, nil
}

// ListByAuthor retrieves a user's tweets in insertion order, each with author
// and like list loaded in the same query batch.
func (r *GORMTweetRepository) ListByAuthor(userID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := r.db.Preload("Author").Preload("LikedBy").
		Where("user_id = ?", userID).Order("id").Find(&tweets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets of user %d: %w", userID, err)
	}
	return tweets, nil
}

// Delete removes the tweet together with its like edges. Both mutations run
// in one transaction so a failure leaves no dangling edges.
func (r *GORMTweetRepository) Delete(tweet *models.Tweet) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tweet).Association("LikedBy").Clear(); err != nil {
			return err
		}
		return tx.Delete(tweet).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete tweet %d: %w", tweet.ID, err)
	}
	return nil
}

// AddLike records that user likes tweet. The join table's composite key makes
// a repeated like an idempotent no-op.
func (r *GORMTweetRepository) AddLike(tweet *models.Tweet, user *models.User) error {
	if err := r.db.Model(tweet).Association("LikedBy").Append(user); err != nil {
		return fmt.Errorf("failed to like tweet %d: %w", tweet.ID, err)
	}
	return nil
}

// RemoveLike removes the like edge if present; removing an absent edge
// succeeds without effect.
func (r *GORMTweetRepository) RemoveLike(tweet *models.Tweet, user *models.User) error {
	if err := r.db.Model(tweet).Association("LikedBy").Delete(user); err != nil {
		return fmt.Errorf("failed to unlike tweet %d: %w", tweet.ID, err)
	}
	return nil
}
