package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique; the composite index
// also backs conflict suppression for concurrent duplicate like requests.
// Likes are hard-deleted so that unlike followed by like works again.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"post"`
}
