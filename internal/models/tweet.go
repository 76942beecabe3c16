package models

// Tweet represents a short message with an ordered list of attached image ids.
// Attachments reference Image rows by id only; an image may be shared between
// tweets or orphaned, and no referential integrity is enforced for them.
type Tweet struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      uint    `json:"user_id" gorm:"not null;index"`
	Content     string  `json:"content" gorm:"type:varchar(300)"`
	Attachments []int64 `json:"attachments" gorm:"serializer:json;type:text"`

	Author  User   `json:"-" gorm:"foreignKey:UserID"`
	LikedBy []User `json:"-" gorm:"many2many:tweet_likes"`
}
