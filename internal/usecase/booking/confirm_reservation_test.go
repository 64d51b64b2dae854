package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

func seedReservation(repo *fakeRepository, barberID uuid.UUID, status string) models.Reservation {
	start := time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC)
	r := models.Reservation{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		BarberID:   &barberID,
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     status,
	}
	repo.reservations = append(repo.reservations, r)
	return r
}

func TestConfirmReservation_OwnBooking(t *testing.T) {
	repo := newFakeRepository()
	barberID := uuid.New()
	r := seedReservation(repo, barberID, "pending")

	uc := NewConfirmReservation(repo, nil)

	got, err := uc.Execute(context.Background(), r.ID, barberID, false)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	require.NotNil(t, got.ConfirmedAt)

	stored, err := repo.GetReservation(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestConfirmReservation_OtherBarberHidden(t *testing.T) {
	repo := newFakeRepository()
	r := seedReservation(repo, uuid.New(), "pending")

	uc := NewConfirmReservation(repo, nil)

	// For a non-owner the booking simply does not exist.
	_, err := uc.Execute(context.Background(), r.ID, uuid.New(), false)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))

	// The owner reaches everything.
	got, err := uc.Execute(context.Background(), r.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
}

func TestConfirmReservation_AlreadyConfirmed(t *testing.T) {
	repo := newFakeRepository()
	barberID := uuid.New()
	r := seedReservation(repo, barberID, "confirmed")

	uc := NewConfirmReservation(repo, nil)

	_, err := uc.Execute(context.Background(), r.ID, barberID, false)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmReservation_NotFound(t *testing.T) {
	repo := newFakeRepository()
	uc := NewConfirmReservation(repo, nil)

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), true)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
}

func TestDeleteReservation(t *testing.T) {
	repo := newFakeRepository()
	barberID := uuid.New()
	r := seedReservation(repo, barberID, "pending")

	uc := NewDeleteReservation(repo, nil)

	// A stranger cannot delete it.
	err := uc.Execute(context.Background(), r.ID, uuid.New(), false)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeReservationNotFound))
	assert.Len(t, repo.reservations, 1)

	// The assigned barber can.
	err = uc.Execute(context.Background(), r.ID, barberID, false)
	require.NoError(t, err)
	assert.Empty(t, repo.reservations)
}

func TestDeleteReservation_OwnerOverride(t *testing.T) {
	repo := newFakeRepository()
	r := seedReservation(repo, uuid.New(), "pending")

	uc := NewDeleteReservation(repo, nil)

	err := uc.Execute(context.Background(), r.ID, uuid.New(), true)
	require.NoError(t, err)
	assert.Empty(t, repo.reservations)
}
