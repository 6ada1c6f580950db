package repository

import (
	"context"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
)

type LeadRepository struct {
	db *storage.Postgres
}

func NewLeadRepository(db *storage.Postgres) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.DB.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) List(ctx context.Context, limit, offset int) ([]models.Lead, error) {
	q := r.db.DB.WithContext(ctx)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var leads []models.Lead
	err := q.Offset(offset).
		Order("created_at DESC").
		Find(&leads).Error

	return leads, err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Lead{}).Error
}
