package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureByAPIKey(apiKey string) (*models.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByAPIKey(apiKey string) (*models.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetProfileByAPIKey(apiKey string) (*models.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetProfileByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetWithFollowing(apiKey string) (*models.User, error) {
	args := m.Called(apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FollowerCount(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListExcluding(ids []uint) ([]models.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Follow(follower, target *models.User) error {
	args := m.Called(follower, target)
	return args.Error(0)
}

func (m *MockUserRepository) Unfollow(follower, target *models.User) error {
	args := m.Called(follower, target)
	return args.Error(0)
}

func TestUserService_EnsureRegistered(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	registered := &models.User{ID: 7, Name: "User", APIKey: "key-1"}

	// Registering the same key twice yields the same user both times.
	mockRepo.On("EnsureByAPIKey", "key-1").Return(registered, nil).Twice()

	first, err := service.EnsureRegistered("key-1")
	assert.NoError(t, err)
	second, err := service.EnsureRegistered("key-1")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetProfileByAPIKey(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	user := &models.User{
		ID:   1,
		Name: "Alice",
		Followers: []*models.User{
			{ID: 2, Name: "Bob"},
		},
		Following: []*models.User{
			{ID: 3, Name: "Carol"},
			{ID: 4, Name: "Dave"},
		},
	}
	mockRepo.On("GetProfileByAPIKey", "alice-key").Return(user, nil).Once()

	profile, err := service.GetProfileByAPIKey("alice-key")
	assert.NoError(t, err)
	assert.True(t, profile.Result)
	assert.Equal(t, uint(1), profile.User.ID)
	assert.Equal(t, "Alice", profile.User.Name)
	assert.Equal(t, []models.UserSummary{{ID: 2, Name: "Bob"}}, profile.User.Followers)
	assert.Equal(t, []models.UserSummary{{ID: 3, Name: "Carol"}, {ID: 4, Name: "Dave"}}, profile.User.Following)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetProfileByAPIKey_EmptyEdges(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetProfileByAPIKey", "lonely").Return(&models.User{ID: 9, Name: "User"}, nil).Once()

	profile, err := service.GetProfileByAPIKey("lonely")
	assert.NoError(t, err)
	// Empty edge sets must render as [] rather than null.
	assert.NotNil(t, profile.User.Followers)
	assert.NotNil(t, profile.User.Following)
	assert.Len(t, profile.User.Followers, 0)
	assert.Len(t, profile.User.Following, 0)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Follow(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	follower := &models.User{ID: 1, APIKey: "follower-key"}
	target := &models.User{ID: 2}

	// Successful follow resolves both sides and adds the edge.
	mockRepo.On("GetByAPIKey", "follower-key").Return(follower, nil).Once()
	mockRepo.On("GetByID", uint(2)).Return(target, nil).Once()
	mockRepo.On("Follow", follower, target).Return(nil).Once()

	err := service.Follow("follower-key", 2)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Follow_TargetMissing(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	follower := &models.User{ID: 1, APIKey: "follower-key"}
	mockRepo.On("GetByAPIKey", "follower-key").Return(follower, nil).Once()
	mockRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()

	err := service.Follow("follower-key", 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Follow_UnregisteredCaller(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByAPIKey", "unknown-key").Return(nil, repositories.ErrNotFound).Once()

	err := service.Follow("unknown-key", 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Unfollow(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	follower := &models.User{ID: 1, APIKey: "follower-key"}
	target := &models.User{ID: 2}

	// Unfollow succeeds even when no edge exists; the repository treats the
	// removal of an absent association as a no-op.
	mockRepo.On("GetByAPIKey", "follower-key").Return(follower, nil).Once()
	mockRepo.On("GetByID", uint(2)).Return(target, nil).Once()
	mockRepo.On("Unfollow", follower, target).Return(nil).Once()

	err := service.Unfollow("follower-key", 2)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
