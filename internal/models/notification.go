package models

import "time"

// Notification is a persisted message addressed to a single user, generated
// as a side effect of another user's action (likes, comments). Notifications
// are never mutated after creation; they are only listed, counted, and
// deleted by id. UserID is indexed so the per-user feed is a keyed lookup.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_notifications_user" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
