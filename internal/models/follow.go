package models

import "time"

// FollowStatus is the caller-visible outcome of a follow or unfollow request.
// The values double as the response messages the API has always returned.
type FollowStatus string

const (
	FollowStatusFollowed         FollowStatus = "Followed successfully."
	FollowStatusAlreadyFollowing FollowStatus = "Already following."
	FollowStatusUnfollowed       FollowStatus = "Unfollowed successfully."
	FollowStatusNotFollowing     FollowStatus = "Not following."
)

// Follow represents a directed follow edge: FollowerID follows FollowingID.
// The composite unique index closes the race between two concurrent identical
// follow requests; a second insert conflicts and is suppressed instead of
// producing a duplicate edge.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
