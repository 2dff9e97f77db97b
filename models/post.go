package models

import "time"

type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	Tag           string    `gorm:"size:50" json:"tag"` // Optional
	ImageFilename string    `gorm:"size:200" json:"imageFilename"`
	CreatedAt     time.Time `json:"createdAt"`
	UserID        uint      `gorm:"not null;index" json:"userId"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}
