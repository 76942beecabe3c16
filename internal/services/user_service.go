package services

import (
	"fmt"

	"github.com/samber/lo"

	"chirp/internal/models"
	"chirp/internal/repositories"
)

// UserService handles registration, profile assembly and the follow graph.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// EnsureRegistered resolves apiKey to a user, creating one on first contact.
// Calling it again with the same key returns the same user; a duplicate-key
// conflict is absorbed inside the repository and never surfaces.
func (s *UserService) EnsureRegistered(apiKey string) (*models.User, error) {
	user, err := s.userRepo.EnsureByAPIKey(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure registration: %w", err)
	}
	return user, nil
}

// GetProfileByAPIKey builds the nested profile view for the key's owner.
func (s *UserService) GetProfileByAPIKey(apiKey string) (*models.UserProfileResponse, error) {
	user, err := s.userRepo.GetProfileByAPIKey(apiKey)
	if err != nil {
		return nil, err
	}
	return buildProfile(user), nil
}

// GetProfileByID builds the nested profile view for the given user id.
func (s *UserService) GetProfileByID(id uint) (*models.UserProfileResponse, error) {
	user, err := s.userRepo.GetProfileByID(id)
	if err != nil {
		return nil, err
	}
	return buildProfile(user), nil
}

// Follow adds the caller->target subscription edge. Both sides must exist.
// Following a user twice leaves a single edge.
func (s *UserService) Follow(apiKey string, targetID uint) error {
	follower, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	return s.userRepo.Follow(follower, target)
}

// Unfollow removes the caller->target edge. Both sides must exist; removing
// an edge that was never there is a successful no-op.
func (s *UserService) Unfollow(apiKey string, targetID uint) error {
	follower, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		return err
	}
	target, err := s.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	return s.userRepo.Unfollow(follower, target)
}

func buildProfile(user *models.User) *models.UserProfileResponse {
	summary := func(u *models.User, _ int) models.UserSummary {
		return models.UserSummary{ID: u.ID, Name: u.Name}
	}
	return &models.UserProfileResponse{
		Result: true,
		User: models.Profile{
			ID:        user.ID,
			Name:      user.Name,
			Followers: lo.Map(user.Followers, summary),
			Following: lo.Map(user.Following, summary),
		},
	}
}
