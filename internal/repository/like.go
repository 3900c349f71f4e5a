package repository

import (
	"context"
	"errors"

	"skillconnect/internal/cache"
	"skillconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Create inserts the like. It reports whether a new row was written;
	// false means the user had already liked the post.
	Create(ctx context.Context, like *models.Like) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.Like, error)
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error)
	// Delete removes the like and reports whether one existed.
	Delete(ctx context.Context, userID, postID uint) (bool, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) (bool, error) {
	// The compound unique index on (user_id, post_id) plus DO NOTHING makes
	// repeat likes a no-op instead of a duplicate key error, including under
	// concurrent double-taps.
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(like)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, like.PostID)
		return true, nil
	}
	return false, nil
}

func (r *likeRepository) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	var like models.Like
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Preload("Post").
		First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	if err := readDB(r.db).WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
		return true, nil
	}
	return false, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error) {
	var likes []models.Like
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Like, error) {
	var likes []models.Like
	if err := readDB(r.db).WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
