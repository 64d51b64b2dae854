package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/audit"
	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

type ConfirmReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ConfirmReservation {
	return &ConfirmReservation{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *ConfirmReservation) Execute(
	ctx context.Context,
	reservationID uuid.UUID,
	actorID uuid.UUID,
	isOwner bool,
) (*models.Reservation, error) {

	reservation, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	// Barbeiros só mexem nas próprias reservas; o dono em todas.
	if !isOwner {
		if reservation.BarberID == nil || *reservation.BarberID != actorID {
			return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
		}
	}

	if err := domain.CanConfirm(domain.Status(reservation.Status)); err != nil {
		return nil, err
	}

	now := time.Now()
	reservation.Status = string(domain.StatusConfirmed)
	reservation.ConfirmedAt = &now

	if err := uc.repo.UpdateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &actorID,
			Action:   "reservation_confirmed",
			Entity:   "reservation",
			EntityID: reservation.ID.String(),
		})
	}

	return reservation, nil
}
