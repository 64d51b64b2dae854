package booking

import (
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// CanConfirm define se uma reserva pode ser confirmada
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// SlotStatusOf maps a persisted reservation onto the slot tri-state.
func SlotStatusOf(r *models.Reservation) SlotStatus {
	if Status(r.Status) == StatusConfirmed {
		return SlotConfirmed
	}
	return SlotPending
}
