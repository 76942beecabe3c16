package repositories

import "chirp/internal/models"

// UserRepository defines the interface for user and follow-graph data access.
type UserRepository interface {
	// EnsureByAPIKey returns the user owning apiKey, creating it first if the
	// key has never been seen. Registering the same key twice yields the same
	// user.
	EnsureByAPIKey(apiKey string) (*models.User, error)
	GetByAPIKey(apiKey string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	// GetProfileByAPIKey and GetProfileByID load the user with both edge sets
	// (Followers, Following) eagerly populated.
	GetProfileByAPIKey(apiKey string) (*models.User, error)
	GetProfileByID(id uint) (*models.User, error)
	// GetWithFollowing loads the user with its subscription list populated.
	GetWithFollowing(apiKey string) (*models.User, error)
	FollowerCount(id uint) (int64, error)
	// ListExcluding returns all users whose id is not in ids, in id order.
	ListExcluding(ids []uint) ([]models.User, error)
	Follow(follower, target *models.User) error
	Unfollow(follower, target *models.User) error
}
