package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Unique index: one active reservation per customer. Past rows are
	// purged lazily when the customer record is queried, so the constraint
	// is the authoritative conflict check.
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	// Nullable: "no preference" reservations are resolved to a concrete
	// barber by the least-occupied selector at creation time.
	BarberID *uuid.UUID `gorm:"type:uuid" json:"barber_id"`
	Barber   *Barber    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   *Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
