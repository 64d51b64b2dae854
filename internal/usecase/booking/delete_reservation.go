package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/audit"
	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	reservationID uuid.UUID,
	actorID uuid.UUID,
	isOwner bool,
) error {

	reservation, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	if !isOwner {
		if reservation.BarberID == nil || *reservation.BarberID != actorID {
			return httperr.ErrBusiness(httperr.CodeReservationNotFound)
		}
	}

	if err := uc.repo.DeleteReservation(ctx, reservationID); err != nil {
		return err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			ActorID:  &actorID,
			Action:   "reservation_deleted",
			Entity:   "reservation",
			EntityID: reservationID.String(),
		})
	}

	return nil
}
