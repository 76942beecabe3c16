package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/internal/services"
)

// MockTweetRepository is a mock implementation of repositories.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *models.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(id uint) (*models.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetWithAuthor(id uint) (*models.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByAuthor(userID uint) ([]models.Tweet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(tweet *models.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) AddLike(tweet *models.Tweet, user *models.User) error {
	args := m.Called(tweet, user)
	return args.Error(0)
}

func (m *MockTweetRepository) RemoveLike(tweet *models.Tweet, user *models.User) error {
	args := m.Called(tweet, user)
	return args.Error(0)
}

func TestTweetService_PostTweet(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	author := &models.User{ID: 3, APIKey: "author-key"}
	mockUsers.On("GetByAPIKey", "author-key").Return(author, nil).Once()
	mockTweets.On("Create", mock.AnythingOfType("*models.Tweet")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Tweet).ID = 42
		}).Return(nil).Once()

	tweetID, err := service.PostTweet("author-key", "hello", []int64{5, 6})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), tweetID)
	mockTweets.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestTweetService_PostTweet_UnregisteredAuthor(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	mockUsers.On("GetByAPIKey", "stranger").Return(nil, repositories.ErrNotFound).Once()

	_, err := service.PostTweet("stranger", "hello", nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockTweets.AssertNotCalled(t, "Create", mock.Anything)
	mockUsers.AssertExpectations(t)
}

func TestTweetService_DeleteTweet_ByAuthor(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	tweet := &models.Tweet{ID: 5, UserID: 3, Author: models.User{ID: 3, APIKey: "author-key"}}
	mockTweets.On("GetWithAuthor", uint(5)).Return(tweet, nil).Once()
	mockTweets.On("Delete", tweet).Return(nil).Once()

	err := service.DeleteTweet("author-key", 5)
	assert.NoError(t, err)
	mockTweets.AssertExpectations(t)
}

func TestTweetService_DeleteTweet_NotOwner(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	tweet := &models.Tweet{ID: 5, UserID: 3, Author: models.User{ID: 3, APIKey: "author-key"}}
	mockTweets.On("GetWithAuthor", uint(5)).Return(tweet, nil).Once()

	err := service.DeleteTweet("somebody-else", 5)
	assert.ErrorIs(t, err, services.ErrForbidden)
	// Forbidden deletes must not mutate anything.
	mockTweets.AssertNotCalled(t, "Delete", mock.Anything)
	mockTweets.AssertExpectations(t)
}

func TestTweetService_DeleteTweet_Missing(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	mockTweets.On("GetWithAuthor", uint(404)).Return(nil, repositories.ErrNotFound).Once()

	err := service.DeleteTweet("author-key", 404)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockTweets.AssertExpectations(t)
}

func TestTweetService_Like_MissingTweet(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	user := &models.User{ID: 1, APIKey: "key"}
	mockUsers.On("GetByAPIKey", "key").Return(user, nil).Once()
	mockTweets.On("GetByID", uint(77)).Return(nil, repositories.ErrNotFound).Once()

	err := service.Like("key", 77)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockTweets.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything)
	mockTweets.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}

func TestTweetService_Unlike(t *testing.T) {
	mockTweets := new(MockTweetRepository)
	mockUsers := new(MockUserRepository)
	service := services.NewTweetService(mockTweets, mockUsers, nil)

	user := &models.User{ID: 1, APIKey: "key"}
	tweet := &models.Tweet{ID: 8}
	mockUsers.On("GetByAPIKey", "key").Return(user, nil).Once()
	mockTweets.On("GetByID", uint(8)).Return(tweet, nil).Once()
	// Removing a like that was never recorded is still a success.
	mockTweets.On("RemoveLike", tweet, user).Return(nil).Once()

	err := service.Unlike("key", 8)
	assert.NoError(t, err)
	mockTweets.AssertExpectations(t)
	mockUsers.AssertExpectations(t)
}
