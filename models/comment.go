package models

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	PostID uint   `gorm:"not null;index" json:"postId"`
}
