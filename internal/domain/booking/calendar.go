package booking

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Business calendar
// ===============================

const (
	// Expediente fixo: 09:00–19:00, segunda a sábado
	OpeningHour = 9
	ClosingHour = 19

	SlotDuration = 30 * time.Minute

	// Reservas só são aceites com 2h de antecedência
	MinimumLead = 2 * time.Hour

	// Janela apresentada ao cliente
	BookingWindowDays = 28
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compares by day/month/year, ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// GenerateSlots emits every bookable half-hour slot between
// startOfDay(startDate) and endDate inclusive, skipping Sundays.
// Slots come out day-major, time ascending, all marked available;
// the generator knows nothing about "now"; callers that need the
// minimum-lead rule apply FilterMinimumLead on top.
//
// An inverted range yields an empty sequence.
func GenerateSlots(startDate, endDate time.Time, barberID *uuid.UUID) []Slot {
	slots := []Slot{}

	for day := StartOfDay(startDate); !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Sunday {
			continue
		}

		for hour := OpeningHour; hour < ClosingHour; hour++ {
			for _, minute := range []int{0, 30} {
				start := time.Date(
					day.Year(), day.Month(), day.Day(),
					hour, minute, 0, 0,
					day.Location(),
				)

				slots = append(slots, Slot{
					Start:    start,
					End:      start.Add(SlotDuration),
					Status:   SlotAvailable,
					BarberID: barberID,
				})
			}
		}
	}

	return slots
}

// FilterMinimumLead drops slots starting less than MinimumLead from now.
func FilterMinimumLead(slots []Slot, now time.Time) []Slot {
	cutoff := now.Add(MinimumLead)

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Start.Before(cutoff) {
			continue
		}
		out = append(out, s)
	}
	return out
}
