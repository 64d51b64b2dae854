package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/models"
)

// Reconcile merges generated slots with the current reservation snapshot
// and produces the per-slot tri-state the booking view renders. The input
// slots are not mutated.
//
// Decision order per slot:
//
//  1. A reservation whose interval strictly spans the slot start
//     (Start < slot.Start < End) marks the slot booked regardless of
//     context: services longer than 30 minutes occupy every half-hour
//     slot they cover, not just the one matching their start instant.
//  2. Specific-barber context: the slot takes the status of that barber's
//     reservation covering the slot start, if any. Pending and confirmed
//     both mean "not bookable again"; the UI only shades them differently.
//  3. Any-barber context: the slot is booked once the barbers not
//     individually occupied at this instant cannot cover the
//     no-preference reservations parked on it.
//  4. Otherwise the slot stays available.
func Reconcile(
	slots []Slot,
	index SlotIndex,
	reservations []models.Reservation,
	activeBarbers []models.Barber,
	barberID *uuid.UUID,
) []Slot {

	out := make([]Slot, 0, len(slots))

	for _, slot := range slots {
		updated := slot
		updated.Status = slotStatus(slot, index, reservations, activeBarbers, barberID)
		out = append(out, updated)
	}

	return out
}

func slotStatus(
	slot Slot,
	index SlotIndex,
	reservations []models.Reservation,
	activeBarbers []models.Barber,
	barberID *uuid.UUID,
) SlotStatus {

	// --------------------------------------------------
	// Contexto de barbeiro específico
	// --------------------------------------------------
	if barberID != nil {
		for i := range reservations {
			r := &reservations[i]
			if r.BarberID == nil || *r.BarberID != *barberID {
				continue
			}
			if covers(r, slot.Start) {
				return SlotStatusOf(r)
			}
		}
		return SlotAvailable
	}

	// --------------------------------------------------
	// Contexto "qualquer barbeiro"
	// --------------------------------------------------

	// Reservas longas ocupam os slots intermédios que não aparecem
	// no índice por timestamp exato.
	for i := range reservations {
		r := &reservations[i]
		if r.StartTime.Before(slot.Start) && slot.Start.Before(r.EndTime) {
			return SlotPending
		}
	}

	bookings := index.At(slot.Start.UnixMilli())
	if len(bookings) == 0 {
		return SlotAvailable
	}

	booked := map[uuid.UUID]bool{}
	noPreference := 0
	for i := range bookings {
		if bookings[i].BarberID == nil {
			noPreference++
			continue
		}
		booked[*bookings[i].BarberID] = true
	}

	available := 0
	for _, barber := range activeBarbers {
		if !booked[barber.ID] {
			available++
		}
	}

	// Sem barbeiros livres suficientes para a procura neste horário.
	if available <= noPreference {
		return SlotPending
	}

	return SlotAvailable
}

// covers reports whether the reservation's half-open interval
// [Start, End) contains the instant t.
func covers(r *models.Reservation, t time.Time) bool {
	return !t.Before(r.StartTime) && t.Before(r.EndTime)
}
