// Package service implements business logic for the application.
package service

import (
	"context"

	"skillconnect/internal/cache"
	"skillconnect/internal/models"
	"skillconnect/internal/observability"
	"skillconnect/internal/repository"
)

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from followerID to targetID. A repeat follow is
// reported as already-following rather than an error; the insert itself is
// what detects the duplicate, so concurrent identical requests cannot create
// two edges.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) (models.FollowStatus, error) {
	if followerID == targetID {
		return "", models.NewValidationError("You cannot follow yourself.")
	}

	// Both endpoints must resolve; a valid token does not guarantee the
	// follower still exists.
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return "", err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return "", err
	}

	created, err := s.followRepo.Create(ctx, &models.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
	})
	if err != nil {
		return "", err
	}
	if !created {
		observability.EngagementEvents.WithLabelValues("follow", "noop").Inc()
		return models.FollowStatusAlreadyFollowing, nil
	}
	observability.EngagementEvents.WithLabelValues("follow", "applied").Inc()
	return models.FollowStatusFollowed, nil
}

// Unfollow removes the edge from followerID to targetID. Removing an edge
// that does not exist is reported as not-following, not as an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) (models.FollowStatus, error) {
	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return "", err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return "", err
	}

	removed, err := s.followRepo.Delete(ctx, followerID, targetID)
	if err != nil {
		return "", err
	}
	if !removed {
		observability.EngagementEvents.WithLabelValues("unfollow", "noop").Inc()
		return models.FollowStatusNotFollowing, nil
	}
	observability.EngagementEvents.WithLabelValues("unfollow", "applied").Inc()
	return models.FollowStatusUnfollowed, nil
}

// IsFollowing reports whether followerID currently follows targetID.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}

// FollowerCount returns how many users follow userID. A missing user has a
// count of zero rather than an error.
func (s *FollowService) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.FollowerCountKey(userID), &count, cache.FollowCountTTL, func() error {
		var loadErr error
		count, loadErr = s.followRepo.CountFollowers(ctx, userID)
		return loadErr
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FollowingCount returns how many users userID follows.
func (s *FollowService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.FollowingCountKey(userID), &count, cache.FollowCountTTL, func() error {
		var loadErr error
		count, loadErr = s.followRepo.CountFollowing(ctx, userID)
		return loadErr
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Followers returns the users following userID, most recent first.
func (s *FollowService) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID, limit, offset)
}

// Following returns the users userID follows, most recent first.
func (s *FollowService) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID, limit, offset)
}
