package services

import (
	"sort"

	"github.com/samber/lo"

	"chirp/internal/models"
	"chirp/internal/repositories"
)

// FeedService assembles the tape: the ranked feed of tweets visible to a
// user. The tape is recomputed on every call; nothing is cached between
// requests and all intermediate state lives in per-call locals.
type FeedService struct {
	userRepo  repositories.UserRepository
	tweetRepo repositories.TweetRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(userRepo repositories.UserRepository, tweetRepo repositories.TweetRepository) *FeedService {
	return &FeedService{
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
	}
}

// rankedUser pairs a subscribed user with their follower count for sorting.
type rankedUser struct {
	followers int64
	userID    uint
}

// GetTape builds the owner's feed:
//
//  1. the owner's own tweets,
//  2. tweets from subscribed users, ranked by follower count descending
//     (ties keep subscription encounter order),
//  3. tweets from every remaining user, in id order.
//
// Within each user the tweets appear newest-first (reverse insertion order).
func (s *FeedService) GetTape(apiKey string) (*models.TapeResponse, error) {
	owner, err := s.userRepo.GetWithFollowing(apiKey)
	if err != nil {
		return nil, err
	}

	processed := map[uint]bool{owner.ID: true}
	orderedUsers := []uint{owner.ID}

	ranked := make([]rankedUser, 0, len(owner.Following))
	for _, sub := range owner.Following {
		count, err := s.userRepo.FollowerCount(sub.ID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, rankedUser{followers: count, userID: sub.ID})
		processed[sub.ID] = true
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].followers > ranked[j].followers
	})
	orderedUsers = append(orderedUsers, lo.Map(ranked, func(r rankedUser, _ int) uint {
		return r.userID
	})...)

	tweets := make([]models.TweetView, 0)
	for _, userID := range orderedUsers {
		tweets, err = s.appendUserTweets(tweets, userID)
		if err != nil {
			return nil, err
		}
	}

	others, err := s.userRepo.ListExcluding(lo.Keys(processed))
	if err != nil {
		return nil, err
	}
	for _, other := range others {
		tweets, err = s.appendUserTweets(tweets, other.ID)
		if err != nil {
			return nil, err
		}
	}

	return &models.TapeResponse{Result: true, Tweets: tweets}, nil
}

// appendUserTweets renders one user's tweets newest-first onto the
// accumulator. The repository loads author and likes eagerly, so each user
// costs a single query batch rather than one query per tweet.
func (s *FeedService) appendUserTweets(acc []models.TweetView, userID uint) ([]models.TweetView, error) {
	userTweets, err := s.tweetRepo.ListByAuthor(userID)
	if err != nil {
		return nil, err
	}
	for i := len(userTweets) - 1; i >= 0; i-- {
		acc = append(acc, buildTweetView(&userTweets[i]))
	}
	return acc, nil
}

func buildTweetView(tweet *models.Tweet) models.TweetView {
	attachments := tweet.Attachments
	if attachments == nil {
		attachments = []int64{}
	}
	return models.TweetView{
		ID:          tweet.ID,
		Content:     tweet.Content,
		Attachments: attachments,
		Author:      models.UserSummary{ID: tweet.Author.ID, Name: tweet.Author.Name},
		Likes: lo.Map(tweet.LikedBy, func(u models.User, _ int) models.TweetLike {
			return models.TweetLike{UserID: u.ID, Name: u.Name}
		}),
	}
}
