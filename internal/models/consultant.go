package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Consultant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	Photo     string    `json:"photo"`
	City      string    `gorm:"index" json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return nil
}

func (Consultant) TableName() string {
	return "consultants"
}
