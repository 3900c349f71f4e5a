package repository

import (
	"context"
	"errors"

	"skillconnect/internal/models"

	"gorm.io/gorm"
)

// ProgressRepository defines persistence operations for learning progress updates.
type ProgressRepository interface {
	Create(ctx context.Context, update *models.ProgressUpdate) error
	GetByID(ctx context.Context, id uint) (*models.ProgressUpdate, error)
	ListByUser(ctx context.Context, userID uint, includePrivate bool, limit, offset int) ([]models.ProgressUpdate, error)
	ListPublic(ctx context.Context, limit, offset int) ([]models.ProgressUpdate, error)
	Update(ctx context.Context, update *models.ProgressUpdate) error
	SetVisibility(ctx context.Context, id uint, isPublic bool) error
	Delete(ctx context.Context, id uint) error
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository returns a new ProgressRepository implementation.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, update *models.ProgressUpdate) error {
	if err := r.db.WithContext(ctx).Create(update).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *progressRepository) GetByID(ctx context.Context, id uint) (*models.ProgressUpdate, error) {
	var update models.ProgressUpdate
	if err := readDB(r.db).WithContext(ctx).First(&update, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("ProgressUpdate", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &update, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uint, includePrivate bool, limit, offset int) ([]models.ProgressUpdate, error) {
	var updates []models.ProgressUpdate
	q := readDB(r.db).WithContext(ctx).Where("user_id = ?", userID)
	if !includePrivate {
		q = q.Where("is_public = ?", true)
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&updates).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return updates, nil
}

func (r *progressRepository) ListPublic(ctx context.Context, limit, offset int) ([]models.ProgressUpdate, error) {
	var updates []models.ProgressUpdate
	if err := readDB(r.db).WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&updates).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return updates, nil
}

func (r *progressRepository) Update(ctx context.Context, update *models.ProgressUpdate) error {
	if err := r.db.WithContext(ctx).Save(update).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *progressRepository) SetVisibility(ctx context.Context, id uint, isPublic bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProgressUpdate{}).
		Where("id = ?", id).
		Update("is_public", isPublic)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("ProgressUpdate", id)
	}
	return nil
}

func (r *progressRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ProgressUpdate{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
