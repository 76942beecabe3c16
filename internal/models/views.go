package models

// API response shapes. These are denormalized projections assembled by the
// services from the relational entities above.

// UserSummary is the short user form embedded in profiles and tweet views.
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Profile is the nested profile view of a single user.
type Profile struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
}

// UserProfileResponse wraps a Profile in the result envelope.
type UserProfileResponse struct {
	Result bool    `json:"result"`
	User   Profile `json:"user"`
}

// TweetLike identifies one user who liked a tweet.
type TweetLike struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// TweetView is a fully rendered tweet: author and likes resolved, attachment
// ids in their original order.
type TweetView struct {
	ID          uint        `json:"id"`
	Content     string      `json:"content"`
	Attachments []int64     `json:"attachments"`
	Author      UserSummary `json:"author"`
	Likes       []TweetLike `json:"likes"`
}

// TapeResponse is the assembled feed returned to the owner.
type TapeResponse struct {
	Result bool        `json:"result"`
	Tweets []TweetView `json:"tweets"`
}
