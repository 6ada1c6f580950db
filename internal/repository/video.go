package repository

import (
	"context"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *storage.Postgres
}

func NewVideoRepository(db *storage.Postgres) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	return r.db.DB.WithContext(ctx).Create(video).Error
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&video).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &video, err
}

func (r *VideoRepository) List(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&videos).Error

	return videos, err
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Video{}).Error
}
