package repository

import (
	"context"
	"errors"

	"skillconnect/internal/models"

	"gorm.io/gorm"
)

// MediaRepository defines persistence operations for media metadata.
type MediaRepository interface {
	Create(ctx context.Context, item *models.MediaItem) error
	GetByID(ctx context.Context, id uint) (*models.MediaItem, error)
	ListByPost(ctx context.Context, postID uint) ([]models.MediaItem, error)
	Update(ctx context.Context, item *models.MediaItem) error
	Delete(ctx context.Context, id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository returns a new MediaRepository implementation.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, item *models.MediaItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	if err := readDB(r.db).WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("MediaItem", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *mediaRepository) ListByPost(ctx context.Context, postID uint) ([]models.MediaItem, error) {
	var items []models.MediaItem
	if err := readDB(r.db).WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *mediaRepository) Update(ctx context.Context, item *models.MediaItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.MediaItem{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
