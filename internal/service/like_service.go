package service

import (
	"context"
	"log/slog"

	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
	"skillconnect/internal/observability"
	"skillconnect/internal/repository"
)

const likeNotificationTitle = "You have a new like for your post"

// notificationCreator is the slice of NotificationService the like flow needs.
type notificationCreator interface {
	Create(ctx context.Context, recipientID uint, title, message string) (*models.Notification, error)
}

// LikeService provides like business logic, including the notification sent
// to the post author.
type LikeService struct {
	likeRepo      repository.LikeRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications notificationCreator
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, notifications notificationCreator) *LikeService {
	return &LikeService{
		likeRepo:      likeRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Like records userID liking postID. The operation is idempotent: a repeat
// like returns the existing record and does not notify again, so the post
// author gets exactly one notification per (user, post) pair no matter how
// often the button is mashed.
func (s *LikeService) Like(ctx context.Context, userID, postID uint) (*models.Like, error) {
	// An existing edge short-circuits before any lookups; a repeat like must
	// return the record unchanged even if the post has since been removed.
	existing, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		observability.EngagementEvents.WithLabelValues("like", "noop").Inc()
		return existing, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return nil, err
	}

	like := &models.Like{UserID: userID, PostID: postID}
	created, err := s.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}

	if !created {
		// Lost the insert race to an identical concurrent like.
		observability.EngagementEvents.WithLabelValues("like", "noop").Inc()
		if winner, err := s.likeRepo.GetByUserAndPost(ctx, userID, postID); err == nil && winner != nil {
			return winner, nil
		}
		return like, nil
	}
	observability.EngagementEvents.WithLabelValues("like", "applied").Inc()

	// Authors are notified about their own likes too; the client decides
	// what to surface.
	message := user.FirstName + " has liked to your post"
	if _, err := s.notifications.Create(ctx, post.UserID, likeNotificationTitle, message); err != nil {
		// The like already landed; a failed notification must not undo it.
		middleware.Logger.ErrorContext(ctx, "like notification failed",
			slog.Uint64("post_id", uint64(postID)),
			slog.String("error", err.Error()),
		)
	}

	return like, nil
}

// Unlike removes the like and reports whether one existed.
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	removed, err := s.likeRepo.Delete(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	if removed {
		observability.EngagementEvents.WithLabelValues("unlike", "applied").Inc()
	} else {
		observability.EngagementEvents.WithLabelValues("unlike", "noop").Inc()
	}
	return removed, nil
}

// HasLiked reports whether userID has liked postID.
func (s *LikeService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}

// Get returns a like by ID with its user and post preloaded.
func (s *LikeService) Get(ctx context.Context, id uint) (*models.Like, error) {
	return s.likeRepo.GetByID(ctx, id)
}

// CountForPost returns how many likes a post has.
func (s *LikeService) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return s.likeRepo.CountByPost(ctx, postID)
}

// ListByPost returns the likes on a post, newest first.
func (s *LikeService) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error) {
	return s.likeRepo.ListByPost(ctx, postID, limit, offset)
}

// ListByUser returns the likes a user has given, newest first.
func (s *LikeService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Like, error) {
	return s.likeRepo.ListByUser(ctx, userID, limit, offset)
}
