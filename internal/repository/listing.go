package repository

import (
	"context"

	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/storage"
	"gorm.io/gorm"
)

// ListingFilter narrows public listing queries.
type ListingFilter struct {
	City     string
	DealType string
	Limit    int
	Offset   int
}

type ListingRepository struct {
	db *storage.Postgres
}

func NewListingRepository(db *storage.Postgres) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.DB.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&listing).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &listing, err
}

func (r *ListingRepository) List(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	q := r.db.DB.WithContext(ctx).Model(&models.Listing{})

	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.DealType != "" {
		q = q.Where("deal_type = ?", filter.DealType)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var listings []models.Listing
	err := q.Offset(filter.Offset).
		Order("created_at DESC").
		Find(&listings).Error

	return listings, err
}

func (r *ListingRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.DB.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Listing{}).Error
}
