package models

// Image stores an uploaded media blob. Content is opaque; no type or size
// validation happens at this layer.
type Image struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Data []byte `json:"-" gorm:"column:image;not null"`
}
