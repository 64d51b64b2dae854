package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

func bookingsFor(barberID uuid.UUID, day time.Time, count int) []models.Reservation {
	out := make([]models.Reservation, 0, count)
	for i := 0; i < count; i++ {
		start := day.Add(time.Duration(9+i) * time.Hour)
		out = append(out, models.Reservation{
			ID:        uuid.New(),
			BarberID:  &barberID,
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		})
	}
	return out
}

func TestSelectBarber_EmptyRoster(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	_, err := SelectBarber(day, nil, nil)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoBarbersAvailable))
}

func TestSelectBarber_PicksLeastOccupied(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	quiet := models.Barber{ID: uuid.New(), Name: "Rui"}
	busy := models.Barber{ID: uuid.New(), Name: "Miguel"}

	bookings := append(
		bookingsFor(busy.ID, day, 4),
		bookingsFor(quiet.ID, day, 1)...,
	)

	got, err := SelectBarber(day.Add(15*time.Hour), []models.Barber{busy, quiet}, bookings)

	require.NoError(t, err)
	assert.Equal(t, quiet.ID, got)
}

func TestSelectBarber_OtherDaysDoNotCount(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	tomorrow := day.AddDate(0, 0, 1)

	a := models.Barber{ID: uuid.New(), Name: "Rui"}
	b := models.Barber{ID: uuid.New(), Name: "Miguel"}

	// b is slammed tomorrow but free today; a has one booking today.
	bookings := append(
		bookingsFor(b.ID, tomorrow, 6),
		bookingsFor(a.ID, day, 1)...,
	)

	got, err := SelectBarber(day.Add(12*time.Hour), []models.Barber{a, b}, bookings)

	require.NoError(t, err)
	assert.Equal(t, b.ID, got)
}

func TestSelectBarber_NeverPicksBusiest(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	a := models.Barber{ID: uuid.New(), Name: "Rui"}
	b := models.Barber{ID: uuid.New(), Name: "Miguel"}
	c := models.Barber{ID: uuid.New(), Name: "Tiago"}

	var bookings []models.Reservation
	bookings = append(bookings, bookingsFor(a.ID, day, 2)...)
	bookings = append(bookings, bookingsFor(b.ID, day, 2)...)
	bookings = append(bookings, bookingsFor(c.ID, day, 5)...)

	seen := map[uuid.UUID]int{}
	for i := 0; i < 200; i++ {
		got, err := SelectBarber(day, []models.Barber{a, b, c}, bookings)
		require.NoError(t, err)
		seen[got]++
	}

	assert.Zero(t, seen[c.ID], "busiest barber must never win the tie-break")
	assert.Positive(t, seen[a.ID])
	assert.Positive(t, seen[b.ID])
}

func TestSelectBarber_TieBreakIsNotPositional(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	a := models.Barber{ID: uuid.New(), Name: "Rui"}
	b := models.Barber{ID: uuid.New(), Name: "Miguel"}

	seen := map[uuid.UUID]int{}
	for i := 0; i < 400; i++ {
		got, err := SelectBarber(day, []models.Barber{a, b}, nil)
		require.NoError(t, err)
		seen[got]++
	}

	// Both tied barbers win a healthy share of draws; the exact split
	// wobbles but a positional pick would give one of them zero.
	assert.Greater(t, seen[a.ID], 100)
	assert.Greater(t, seen[b.ID], 100)
}

func TestSelectBarber_NoPreferenceBookingsIgnored(t *testing.T) {
	day := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	a := models.Barber{ID: uuid.New(), Name: "Rui"}

	start := day.Add(10 * time.Hour)
	bookings := []models.Reservation{
		{ID: uuid.New(), BarberID: nil, StartTime: start, EndTime: start.Add(30 * time.Minute)},
	}

	got, err := SelectBarber(day, []models.Barber{a}, bookings)

	require.NoError(t, err)
	assert.Equal(t, a.ID, got)
}
