package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"chirp/internal/models"
	"chirp/internal/repositories"
	"chirp/pkg/rabbitmq"
)

// TweetService handles business logic for tweets and like edges.
type TweetService struct {
	tweetRepo repositories.TweetRepository
	userRepo  repositories.UserRepository
	mqClient  *rabbitmq.Client // optional, may be nil
}

// NewTweetService creates a new TweetService.
func NewTweetService(tweetRepo repositories.TweetRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		mqClient:  mqClient,
	}
}

// PostTweet creates a tweet for the key's owner and returns its new id.
// attachmentIDs reference previously uploaded images, order-preserving; an
// empty list and empty content are both valid.
func (s *TweetService) PostTweet(apiKey, content string, attachmentIDs []int64) (uint, error) {
	author, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		return 0, err
	}

	tweet := &models.Tweet{
		UserID:      author.ID,
		Content:     content,
		Attachments: attachmentIDs,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return 0, fmt.Errorf("failed to post tweet: %w", err)
	}

	// Publish a tweet.created event. Publishing is best-effort: the tweet is
	// already committed, so a broker failure only loses the event.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"event_id": uuid.New().String(),
			"type":     "tweet.created",
			"tweet_id": tweet.ID,
			"user_id":  author.ID,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal tweet event: %v", err)
		} else if err := s.mqClient.PublishTweetEvent(body); err != nil {
			log.Printf("Warning: failed to publish tweet.created for tweet %d: %v", tweet.ID, err)
		}
	}

	return tweet.ID, nil
}

// DeleteTweet removes a tweet and its like edges. Only the author may delete;
// any other caller gets ErrForbidden and the tweet is left intact.
func (s *TweetService) DeleteTweet(apiKey string, tweetID uint) error {
	tweet, err := s.tweetRepo.GetWithAuthor(tweetID)
	if err != nil {
		return err
	}
	if tweet.Author.APIKey != apiKey {
		return fmt.Errorf("tweet %d belongs to another user: %w", tweetID, ErrForbidden)
	}
	return s.tweetRepo.Delete(tweet)
}

// Like records that the key's owner likes the tweet. Both must exist; liking
// the same tweet twice leaves a single edge.
func (s *TweetService) Like(apiKey string, tweetID uint) error {
	user, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		return err
	}
	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		return err
	}
	return s.tweetRepo.AddLike(tweet, user)
}

// Unlike removes the like edge. Removing a like that was never recorded is a
// successful no-op.
func (s *TweetService) Unlike(apiKey string, tweetID uint) error {
	user, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		return err
	}
	tweet, err := s.tweetRepo.GetByID(tweetID)
	if err != nil {
		return err
	}
	return s.tweetRepo.RemoveLike(tweet, user)
}
