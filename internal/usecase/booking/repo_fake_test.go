package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

// fakeRepository is an in-memory stand-in for the gorm repository. It
// enforces the same invariants the database constraints would: unique
// customer phone and one active reservation per customer.
type fakeRepository struct {
	reservations []models.Reservation
	customers    []models.Customer
	barbers      []models.Barber
	services     map[uuid.UUID]*models.Service

	// Forced failures.
	createCustomerErr error
	purgeErr          error

	purgeCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{services: map[uuid.UUID]*models.Service{}}
}

func (f *fakeRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return append([]models.Reservation{}, f.reservations...), nil
}

func (f *fakeRepository) ListReservationsForCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListReservationsForBarber(ctx context.Context, barberID uuid.UUID) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BarberID != nil && *r.BarberID == barberID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateReservation(ctx context.Context, r *models.Reservation) error {
	for _, existing := range f.reservations {
		if existing.CustomerID == r.CustomerID {
			return httperr.ErrBusiness(httperr.CodeActiveReservation)
		}
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeRepository) GetReservation(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepository) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == r.ID {
			f.reservations[i] = *r
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepository) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepository) DeletePastReservations(ctx context.Context, customerID uuid.UUID, before time.Time) error {
	f.purgeCalls++
	if f.purgeErr != nil {
		return f.purgeErr
	}

	kept := f.reservations[:0]
	for _, r := range f.reservations {
		if r.CustomerID == customerID && r.StartTime.Before(before) {
			continue
		}
		kept = append(kept, r)
	}
	f.reservations = kept
	return nil
}

func (f *fakeRepository) ListActiveBarbers(ctx context.Context) ([]models.Barber, error) {
	return append([]models.Barber{}, f.barbers...), nil
}

func (f *fakeRepository) FindCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].Phone == phone {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if f.createCustomerErr != nil {
		err := f.createCustomerErr
		f.createCustomerErr = nil
		return err
	}

	for _, existing := range f.customers {
		if existing.Phone == customer.Phone {
			return httperr.ErrBusiness(httperr.CodeDuplicatePhone)
		}
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeRepository) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errors.New("record not found")
}
