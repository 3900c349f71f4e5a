package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaKind enumerates the supported media attachment kinds.
type MediaKind string

const (
	// MediaKindImage is a static image attachment.
	MediaKindImage MediaKind = "image"
	// MediaKindVideo is a video attachment.
	MediaKindVideo MediaKind = "video"
)

// MediaItem is media metadata attached to a post. Only the kind and URL are
// stored; the bytes live wherever the URL points.
type MediaItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	Kind      MediaKind      `gorm:"type:varchar(20);not null" json:"kind"`
	URL       string         `gorm:"not null" json:"url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

// TableName specifies the table name for GORM
func (MediaItem) TableName() string {
	return "media_items"
}
