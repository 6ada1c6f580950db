package repository

import (
	"context"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
	"gorm.io/gorm"
)

type BlogRepository struct {
	db *storage.Postgres
}

func NewBlogRepository(db *storage.Postgres) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.DB.WithContext(ctx).Create(blog).Error
}

// Retrieves a post by id or slug
func (r *BlogRepository) Find(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.DB.WithContext(ctx).
		Where("id = ? OR slug = ?", idOrSlug, idOrSlug).
		First(&blog).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &blog, err
}

func (r *BlogRepository) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	q := r.db.DB.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var blogs []models.Blog
	err := q.Offset(offset).
		Order("created_at DESC").
		Find(&blogs).Error

	return blogs, err
}

func (r *BlogRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.DB.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Blog{}).Error
}
