package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chirp/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// EnsureByAPIKey looks up the user by api key, registering it on first sight.
// A unique-key conflict from a concurrent registration is absorbed by
// re-reading the winning row, so the operation is idempotent either way.
func (r *GORMUserRepository) EnsureByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "api_key = ?", apiKey).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user by api key: %w", err)
	}

	user = models.User{APIKey: apiKey}
	if createErr := r.db.Create(&user).Error; createErr != nil {
		if ferr := r.db.First(&user, "api_key = ?", apiKey).Error; ferr == nil {
			return &user, nil
		}
		return nil, fmt.Errorf("failed to register user: %w", createErr)
	}
	return &user, nil
}

// GetByAPIKey retrieves a user by their api key.
func (r *GORMUserRepository) GetByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "api_key = ?", apiKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with this api key: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by api key: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetProfileByAPIKey retrieves a user with both edge sets eagerly loaded.
func (r *GORMUserRepository) GetProfileByAPIKey(apiKey string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Followers").Preload("Following").
		First(&user, "api_key = ?", apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with this api key: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by api key: %w", err)
	}
	return &user, nil
}

// GetProfileByID retrieves a user with both edge sets eagerly loaded.
func (r *GORMUserRepository) GetProfileByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Followers").Preload("Following").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetWithFollowing retrieves a user with their subscription list loaded.
func (r *GORMUserRepository) GetWithFollowing(apiKey string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Following").First(&user, "api_key = ?", apiKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with this api key: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with subscriptions: %w", err)
	}
	return &user, nil
}

// FollowerCount returns the number of users following the given user.
func (r *GORMUserRepository) FollowerCount(id uint) (int64, error) {
	assoc := r.db.Model(&models.User{ID: id}).Association("Followers")
	count := assoc.Count()
	if assoc.Error != nil {
		return 0, fmt.Errorf("failed to count followers of user %d: %w", id, assoc.Error)
	}
	return count, nil
}

// ListExcluding returns every user whose id is not in ids, ordered by id.
func (r *GORMUserRepository) ListExcluding(ids []uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("id NOT IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Follow adds the directed follower->target edge. The single `follows` join
// table serves both the Following and Followers projections, so no inverse
// bookkeeping is needed. Appending an existing edge is a no-op upsert.
func (r *GORMUserRepository) Follow(follower, target *models.User) error {
	if err := r.db.Model(follower).Association("Following").Append(target); err != nil {
		return fmt.Errorf("failed to follow user %d: %w", target.ID, err)
	}
	return nil
}

// Unfollow removes the directed follower->target edge. Removing an edge that
// does not exist succeeds without effect.
func (r *GORMUserRepository) Unfollow(follower, target *models.User) error {
	if err := r.db.Model(follower).Association("Following").Delete(target); err != nil {
		return fmt.Errorf("failed to unfollow user %d: %w", target.ID, err)
	}
	return nil
}
