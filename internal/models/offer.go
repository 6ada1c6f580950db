package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offer is a promotional banner shown alongside listings.
type Offer struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Body      string     `json:"body"`
	Image     string     `json:"image"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	return nil
}

func (Offer) TableName() string {
	return "offers"
}
