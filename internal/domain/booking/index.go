package booking

import (
	"github.com/killyross/barbershop-booking/internal/models"
)

// SlotIndex maps a slot-start instant (epoch milliseconds) to the
// reservations starting exactly there. Rebuilt on every fetch; a pure
// lookup aid for the reconciler.
type SlotIndex map[int64][]models.Reservation

// GroupBySlotStart indexes reservations by their start instant.
// Insertion order within a group is preserved; a nil input yields an
// empty, usable index.
func GroupBySlotStart(reservations []models.Reservation) SlotIndex {
	index := SlotIndex{}

	for _, r := range reservations {
		key := r.StartTime.UnixMilli()
		index[key] = append(index[key], r)
	}

	return index
}

// At returns the reservations starting exactly at t.
func (idx SlotIndex) At(t int64) []models.Reservation {
	return idx[t]
}
