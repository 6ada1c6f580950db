package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is a property tour clip; managed by admins only.
type Video struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Path       string     `gorm:"not null" json:"path"`
	ListingID  *uuid.UUID `gorm:"index" json:"listing_id,omitempty"`
	UploadedBy *uuid.UUID `gorm:"index" json:"uploaded_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	return nil
}

func (Video) TableName() string {
	return "videos"
}
