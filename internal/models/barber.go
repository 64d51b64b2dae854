package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'barber'" json:"role"`

	// Inactive barbers stay out of the public booking view but keep
	// their reservation history.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
