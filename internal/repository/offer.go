package repository

import (
	"context"
	"time"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
)

type OfferRepository struct {
	db *storage.Postgres
}

func NewOfferRepository(db *storage.Postgres) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *models.Offer) error {
	return r.db.DB.WithContext(ctx).Create(offer).Error
}

// Retrieves offers that have not expired yet
func (r *OfferRepository) ListActive(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.DB.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("created_at DESC").
		Find(&offers).Error

	return offers, err
}

func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Offer{}).Error
}
