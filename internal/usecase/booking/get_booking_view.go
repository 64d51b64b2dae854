package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
)

// ======================================================
// GET BOOKING VIEW
// ======================================================

// GetBookingView runs the full availability pipeline: generate the
// calendar grid for the next four weeks, apply the minimum-lead rule,
// index the reservation snapshot and reconcile everything into the
// annotated slot list the booking page renders.
type GetBookingView struct {
	repo domain.Repository
}

func NewGetBookingView(repo domain.Repository) *GetBookingView {
	return &GetBookingView{repo: repo}
}

func (uc *GetBookingView) Execute(
	ctx context.Context,
	barberID *uuid.UUID,
	now time.Time,
) ([]domain.Slot, error) {

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.ListActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}

	endDate := now.AddDate(0, 0, domain.BookingWindowDays)

	slots := domain.GenerateSlots(now, endDate, barberID)
	slots = domain.FilterMinimumLead(slots, now)

	index := domain.GroupBySlotStart(reservations)

	return domain.Reconcile(slots, index, reservations, barbers, barberID), nil
}
