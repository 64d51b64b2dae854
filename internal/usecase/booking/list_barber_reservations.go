package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/models"
)

const DefaultListWindowDays = 14

// ListBarberReservations feeds the staff dashboard: the barber's
// reservations inside a future window, optionally narrowed by a
// customer name or phone search.
type ListBarberReservations struct {
	repo domain.Repository
}

func NewListBarberReservations(repo domain.Repository) *ListBarberReservations {
	return &ListBarberReservations{repo: repo}
}

func (uc *ListBarberReservations) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	daysAhead int,
	search string,
	now time.Time,
) ([]models.Reservation, error) {

	if daysAhead <= 0 {
		daysAhead = DefaultListWindowDays
	}

	reservations, err := uc.repo.ListReservationsForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	until := now.AddDate(0, 0, daysAhead)
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.StartTime.Before(now) || r.StartTime.After(until) {
			continue
		}
		if search != "" && !matchesSearch(&r, search) {
			continue
		}
		out = append(out, r)
	}

	return out, nil
}

func matchesSearch(r *models.Reservation, search string) bool {
	return strings.Contains(strings.ToLower(r.Customer.Name), search) ||
		strings.Contains(r.Customer.Phone, search)
}
