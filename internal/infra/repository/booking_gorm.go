package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// isUniqueViolation detects the Postgres unique-constraint error. The
// constraint, not the in-application pre-check, is the authoritative
// conflict detector.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *BookingGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *BookingGormRepository) ListReservationsForCustomer(
	ctx context.Context,
	customerID uuid.UUID,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *BookingGormRepository) ListReservationsForBarber(
	ctx context.Context,
	barberID uuid.UUID,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Create(reservation).Error
	if isUniqueViolation(err) {
		// Corrida contra outra reserva do mesmo cliente.
		return httperr.ErrBusiness(httperr.CodeActiveReservation)
	}
	return err
}

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	id uuid.UUID,
) (*models.Reservation, error) {

	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&reservation).Error; err != nil {
		return nil, err
	}

	return &reservation, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *BookingGormRepository) DeleteReservation(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Reservation{}, "id = ?", id).Error
}

func (r *BookingGormRepository) DeletePastReservations(
	ctx context.Context,
	customerID uuid.UUID,
	before time.Time,
) error {
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND start_time < ?", customerID, before).
		Delete(&models.Reservation{}).Error
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}

	return barbers, nil
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (r *BookingGormRepository) FindCustomerByPhone(
	ctx context.Context,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *BookingGormRepository) CreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {

	err := r.db.WithContext(ctx).Create(customer).Error
	if isUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeDuplicatePhone)
	}
	return err
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&service).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
