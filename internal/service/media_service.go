package service

import (
	"context"
	"net/url"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
)

// MediaService provides media metadata business logic.
type MediaService struct {
	mediaRepo repository.MediaRepository
	postRepo  repository.PostRepository
}

type CreateMediaInput struct {
	UserID uint
	PostID uint
	Kind   models.MediaKind
	URL    string
}

// NewMediaService returns a new MediaService.
func NewMediaService(mediaRepo repository.MediaRepository, postRepo repository.PostRepository) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		postRepo:  postRepo,
	}
}

func (s *MediaService) Attach(ctx context.Context, in CreateMediaInput) (*models.MediaItem, error) {
	if in.Kind != models.MediaKindImage && in.Kind != models.MediaKindVideo {
		return nil, models.NewValidationError("Invalid media kind")
	}
	if _, err := url.ParseRequestURI(in.URL); err != nil {
		return nil, models.NewValidationError("Media url must be a valid URL")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only attach media to your own posts")
	}

	item := &models.MediaItem{
		PostID: in.PostID,
		Kind:   in.Kind,
		URL:    in.URL,
	}
	if err := s.mediaRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MediaService) Get(ctx context.Context, id uint) (*models.MediaItem, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

func (s *MediaService) ListByPost(ctx context.Context, postID uint) ([]models.MediaItem, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.mediaRepo.ListByPost(ctx, postID)
}

func (s *MediaService) Detach(ctx context.Context, userID, mediaID uint) error {
	item, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, item.PostID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only remove media from your own posts")
	}

	return s.mediaRepo.Delete(ctx, mediaID)
}
