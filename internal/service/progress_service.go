package service

import (
	"context"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
)

// ProgressService provides learning progress update business logic.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
}

type CreateProgressInput struct {
	UserID   uint
	Title    string
	Content  string
	Template string
	IsPublic *bool
}

type UpdateProgressInput struct {
	UserID   uint
	UpdateID uint
	Title    string
	Content  string
	Template string
}

// NewProgressService returns a new ProgressService.
func NewProgressService(progressRepo repository.ProgressRepository, userRepo repository.UserRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

func (s *ProgressService) Create(ctx context.Context, in CreateProgressInput) (*models.ProgressUpdate, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	update := &models.ProgressUpdate{
		UserID:   in.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Template: in.Template,
		IsPublic: true,
	}
	if in.IsPublic != nil {
		update.IsPublic = *in.IsPublic
	}

	if err := s.progressRepo.Create(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// Get returns a single progress update. Private updates are only visible to
// their owner.
func (s *ProgressService) Get(ctx context.Context, id, viewerID uint) (*models.ProgressUpdate, error) {
	update, err := s.progressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !update.IsPublic && update.UserID != viewerID {
		return nil, models.NewNotFoundError("ProgressUpdate", id)
	}
	return update, nil
}

// ListForUser returns a user's progress timeline. Private entries are
// included only when the viewer is the owner.
func (s *ProgressService) ListForUser(ctx context.Context, userID, viewerID uint, limit, offset int) ([]models.ProgressUpdate, error) {
	includePrivate := userID == viewerID
	return s.progressRepo.ListByUser(ctx, userID, includePrivate, limit, offset)
}

// ListPublic returns the public progress feed, newest first.
func (s *ProgressService) ListPublic(ctx context.Context, limit, offset int) ([]models.ProgressUpdate, error) {
	return s.progressRepo.ListPublic(ctx, limit, offset)
}

func (s *ProgressService) Update(ctx context.Context, in UpdateProgressInput) (*models.ProgressUpdate, error) {
	update, err := s.progressRepo.GetByID(ctx, in.UpdateID)
	if err != nil {
		return nil, err
	}
	if update.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own progress updates")
	}

	if in.Title != "" {
		update.Title = in.Title
	}
	if in.Content != "" {
		update.Content = in.Content
	}
	if in.Template != "" {
		update.Template = in.Template
	}

	if err := s.progressRepo.Update(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// SetVisibility flips a progress update between public and private.
func (s *ProgressService) SetVisibility(ctx context.Context, userID, updateID uint, isPublic bool) (*models.ProgressUpdate, error) {
	update, err := s.progressRepo.GetByID(ctx, updateID)
	if err != nil {
		return nil, err
	}
	if update.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only change your own progress updates")
	}

	if err := s.progressRepo.SetVisibility(ctx, updateID, isPublic); err != nil {
		return nil, err
	}
	update.IsPublic = isPublic
	return update, nil
}

func (s *ProgressService) Delete(ctx context.Context, userID, updateID uint) error {
	update, err := s.progressRepo.GetByID(ctx, updateID)
	if err != nil {
		return err
	}
	if update.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own progress updates")
	}
	return s.progressRepo.Delete(ctx, updateID)
}
