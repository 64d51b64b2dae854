package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/models"
)

type Repository interface {
	// -------- Reservations --------
	ListReservations(
		ctx context.Context,
	) ([]models.Reservation, error)

	ListReservationsForCustomer(
		ctx context.Context,
		customerID uuid.UUID,
	) ([]models.Reservation, error)

	ListReservationsForBarber(
		ctx context.Context,
		barberID uuid.UUID,
	) ([]models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id uuid.UUID,
	) error

	// Lazy sweep: removes the customer's reservations starting before
	// the cutoff. Called opportunistically; failures must not block
	// the booking flow.
	DeletePastReservations(
		ctx context.Context,
		customerID uuid.UUID,
		before time.Time,
	) error

	// -------- Barbers --------
	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Customers --------
	// FindCustomerByPhone returns (nil, nil) when no customer exists.
	FindCustomerByPhone(
		ctx context.Context,
		phone string,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) error

	// -------- Services --------
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)
}
