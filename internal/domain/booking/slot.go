package booking

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Slot view-model
// ===============================

// SlotStatus is the canonical tri-state of a bookable window. Historical
// variants stored booleans ("false" = pending) or free-text labels; every
// call site maps through this type instead.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotConfirmed SlotStatus = "confirmed"
)

// Bookable reports whether a customer can still take the slot.
func (s SlotStatus) Bookable() bool {
	return s == SlotAvailable
}

// Slot is a half-hour window [Start, End) regenerated on every view
// refresh. Never persisted.
type Slot struct {
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Status SlotStatus `json:"status"`

	// Barber the slot is being evaluated against; nil in the
	// "any barber" viewing context.
	BarberID *uuid.UUID `json:"barber_id,omitempty"`
}
