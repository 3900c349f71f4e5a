package service

import (
	"context"
	"errors"
	"log/slog"

	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
	"skillconnect/internal/repository"
)

// NotificationPublisher receives persisted notifications for realtime fanout.
type NotificationPublisher func(ctx context.Context, notification *models.Notification)

// NotificationService provides notification business logic.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	publish          NotificationPublisher
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// SetPublisher wires a realtime fanout hook. Fanout is best-effort and runs
// after the notification has been persisted.
func (s *NotificationService) SetPublisher(publish NotificationPublisher) {
	s.publish = publish
}

// Create persists a notification for the recipient. A missing recipient is
// silently absorbed: the caller gets (nil, nil) and nothing is written, so
// engagement flows never fail because the recipient disappeared.
func (s *NotificationService) Create(ctx context.Context, recipientID uint, title, message string) (*models.Notification, error) {
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return nil, nil
		}
		return nil, err
	}

	notification := &models.Notification{
		UserID:  recipientID,
		Title:   title,
		Message: message,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	middleware.NotificationsCreated.WithLabelValues("engagement").Inc()

	if s.publish != nil {
		s.publish(ctx, notification)
	}
	return notification, nil
}

// Get returns a single notification by ID.
func (s *NotificationService) Get(ctx context.Context, id uint) (*models.Notification, error) {
	return s.notificationRepo.GetByID(ctx, id)
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, userID, limit, offset)
}

// CountForUser returns the number of notifications for the user. Unknown
// users simply have zero notifications.
func (s *NotificationService) CountForUser(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountByRecipient(ctx, userID)
}

// Delete removes a notification and reports whether one was removed.
// Failures are logged and reported as false rather than surfaced.
func (s *NotificationService) Delete(ctx context.Context, id uint) bool {
	deleted, err := s.notificationRepo.Delete(ctx, id)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "notification delete failed",
			slog.Uint64("notification_id", uint64(id)),
			slog.String("error", err.Error()),
		)
		return false
	}
	return deleted
}
