package booking

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

// SelectBarber picks the barber with the fewest reservations on the given
// calendar day (time-of-day ignored). Ties are broken uniformly at random
// so list order never biases the load distribution.
//
// An empty roster is a business error, never an invalid id.
func SelectBarber(day time.Time, activeBarbers []models.Barber, allBookings []models.Reservation) (uuid.UUID, error) {
	if len(activeBarbers) == 0 {
		return uuid.Nil, httperr.ErrBusiness(httperr.CodeNoBarbersAvailable)
	}

	appearances := map[uuid.UUID]int{}
	for _, r := range allBookings {
		if r.BarberID == nil || !SameDay(r.StartTime, day) {
			continue
		}
		appearances[*r.BarberID]++
	}

	least := -1
	var leastOccupied []uuid.UUID

	for _, barber := range activeBarbers {
		count := appearances[barber.ID]

		switch {
		case least == -1 || count < least:
			least = count
			leastOccupied = []uuid.UUID{barber.ID}
		case count == least:
			leastOccupied = append(leastOccupied, barber.ID)
		}
	}

	if len(leastOccupied) > 1 {
		return leastOccupied[rand.Intn(len(leastOccupied))], nil
	}

	return leastOccupied[0], nil
}
