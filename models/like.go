package models

// Like records one user liking one post. The (PostID, UserID) pair is kept
// unique by a check before insert in the like handler, not by an index.
type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;index" json:"postId"`
	UserID uint `gorm:"not null;index" json:"userId"`
}
