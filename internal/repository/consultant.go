package repository

import (
	"context"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
	"gorm.io/gorm"
)

type ConsultantRepository struct {
	db *storage.Postgres
}

func NewConsultantRepository(db *storage.Postgres) *ConsultantRepository {
	return &ConsultantRepository{db: db}
}

func (r *ConsultantRepository) Create(ctx context.Context, consultant *models.Consultant) error {
	return r.db.DB.WithContext(ctx).Create(consultant).Error
}

func (r *ConsultantRepository) FindByID(ctx context.Context, id string) (*models.Consultant, error) {
	var consultant models.Consultant
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&consultant).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &consultant, err
}

func (r *ConsultantRepository) List(ctx context.Context, city string) ([]models.Consultant, error) {
	q := r.db.DB.WithContext(ctx)
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var consultants []models.Consultant
	err := q.Order("created_at DESC").Find(&consultants).Error

	return consultants, err
}

func (r *ConsultantRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.DB.WithContext(ctx).
		Model(&models.Consultant{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ConsultantRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Consultant{}).Error
}
