package models

// User represents a registered user. Identity is established solely by the
// opaque APIKey; there are no credentials beyond it.
//
// Following and Followers are two projections of the same directed `follows`
// edge table (follower_id -> followee_id), so adding a user to Following
// makes the inverse visible through Followers without extra bookkeeping.
type User struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"type:varchar(100);default:User"`
	APIKey string `gorm:"column:api_key;type:varchar(255);uniqueIndex;not null"` // No json tag for security

	Following []*User `json:"-" gorm:"many2many:follows;joinForeignKey:follower_id;joinReferences:followee_id"`
	Followers []*User `json:"-" gorm:"many2many:follows;joinForeignKey:followee_id;joinReferences:follower_id"`
	Tweets    []Tweet `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
