package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressUpdate is a learning-progress entry a user shares on their profile.
// Private updates are visible only to their author.
type ProgressUpdate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text" json:"content"`
	Template  string         `gorm:"type:varchar(50)" json:"template"`
	IsPublic  bool           `gorm:"default:true" json:"is_public"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (ProgressUpdate) TableName() string {
	return "progress_updates"
}
