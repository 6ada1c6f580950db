package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead is a contact-form submission from a site visitor.
type Lead struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Phone     string     `gorm:"not null" json:"phone"`
	Message   string     `json:"message"`
	ListingID *uuid.UUID `gorm:"index" json:"listing_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	return nil
}

func (Lead) TableName() string {
	return "leads"
}
