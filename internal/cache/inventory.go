package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix           = "user:%d"
	PostKeyPrefix           = "post:%d"
	FollowerCountKeyPrefix  = "user:%d:followers:count"
	FollowingCountKeyPrefix = "user:%d:following:count"
)

const (
	UserTTL        = 5 * time.Minute
	PostTTL        = 30 * time.Minute
	FollowCountTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func FollowerCountKey(userID uint) string {
	return fmt.Sprintf(FollowerCountKeyPrefix, userID)
}

func FollowingCountKey(userID uint) string {
	return fmt.Sprintf(FollowingCountKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateFollowCounts drops both cached counts affected by a follow edge change.
func InvalidateFollowCounts(ctx context.Context, followerID, followingID uint) {
	Invalidate(ctx, FollowingCountKey(followerID))
	Invalidate(ctx, FollowerCountKey(followingID))
}
