package service

import (
	"context"
	"net/url"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
)

type PostService struct {
	postRepo  repository.PostRepository
	mediaRepo repository.MediaRepository
}

// CreatePostMediaInput is a media attachment supplied when creating a post.
type CreatePostMediaInput struct {
	Kind models.MediaKind `json:"kind"`
	URL  string           `json:"url"`
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	Media   []CreatePostMediaInput
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
	Sort          string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, mediaRepo repository.MediaRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		mediaRepo: mediaRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300
	const maxContentLen = 50000

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	for _, m := range in.Media {
		if m.Kind != models.MediaKindImage && m.Kind != models.MediaKindVideo {
			return nil, models.NewValidationError("Invalid media kind")
		}
		if _, err := url.ParseRequestURI(m.URL); err != nil {
			return nil, models.NewValidationError("Media url must be a valid URL")
		}
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	for _, m := range in.Media {
		item := &models.MediaItem{
			PostID: post.ID,
			Kind:   m.Kind,
			URL:    m.URL,
		}
		if err := s.mediaRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID, in.Sort)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.postRepo.Search(ctx, query, limit, offset, currentUserID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, 0)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
