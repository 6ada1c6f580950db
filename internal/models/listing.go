package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing is a property poster shown on the public site.
type Listing struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DealType    string     `gorm:"index" json:"deal_type"` // sale / rent / mortgage
	City        string     `gorm:"index" json:"city"`
	District    string     `json:"district"`
	Price       int64      `json:"price"`
	AreaSqm     int        `json:"area_sqm"`
	Rooms       int        `json:"rooms"`
	Images      string     `json:"images"` // comma-separated upload paths
	CreatedByID *uuid.UUID `gorm:"index" json:"created_by_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	return nil
}

func (Listing) TableName() string {
	return "listings"
}
