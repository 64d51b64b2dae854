package booking

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/audit"
	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/domain/phone"
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/models"
	"github.com/killyross/barbershop-booking/internal/notify"
	"github.com/killyross/barbershop-booking/internal/phonecheck"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	CustomerName  string
	CustomerPhone string

	SlotStart time.Time

	// Nil means "no preference": the least-occupied barber for that day
	// takes the booking.
	BarberID *uuid.UUID

	// Optional service; drives the reservation length. Nil falls back to
	// the base 30-minute slot.
	ServiceID *uuid.UUID
}

// Capabilities are the feature flags resolved once at startup.
type Capabilities struct {
	SendSMS       bool
	ValidatePhone bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo      domain.Repository
	validator phonecheck.Validator
	notifier  *notify.Dispatcher
	audit     *audit.Dispatcher

	caps    Capabilities
	country string

	now func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	validator phonecheck.Validator,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
	caps Capabilities,
	country string,
) *CreateReservation {
	return &CreateReservation{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		audit:     auditDispatcher,
		caps:      caps,
		country:   country,
		now:       time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Telefone normalizado (+351…)
	// --------------------------------------------------
	formattedPhone, err := phone.Format(in.CustomerPhone, uc.country)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Validação externa (opcional, por flag)
	// --------------------------------------------------
	if uc.caps.ValidatePhone && uc.validator != nil {
		valid, err := uc.validator.Validate(ctx, formattedPhone, uc.country)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidPhone)
		}
	}

	// --------------------------------------------------
	// 3. Cliente (find-or-create por telefone)
	// --------------------------------------------------
	customer, err := uc.resolveCustomer(ctx, in.CustomerName, formattedPhone)
	if err != nil {
		return nil, err
	}
	if customer.Banned {
		return nil, httperr.ErrBusiness(httperr.CodeCustomerBanned)
	}

	// --------------------------------------------------
	// 4. Limpeza preguiçosa + reserva ativa
	// --------------------------------------------------
	now := uc.now()
	if err := uc.assertNoActiveReservation(ctx, customer.ID, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Barbeiro (explícito ou menos ocupado do dia)
	// --------------------------------------------------
	allBookings, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	barberID := in.BarberID
	if barberID == nil {
		barbers, err := uc.repo.ListActiveBarbers(ctx)
		if err != nil {
			return nil, err
		}

		selected, err := domain.SelectBarber(in.SlotStart, barbers, allBookings)
		if err != nil {
			return nil, err
		}
		barberID = &selected
	}

	// --------------------------------------------------
	// 6. Duração (serviço escolhido ou slot base)
	// --------------------------------------------------
	duration := domain.SlotDuration
	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		if service.DurationMin > 0 {
			duration = time.Duration(service.DurationMin) * time.Minute
		}
	}

	// --------------------------------------------------
	// 7. Persistência (constraint única é a verdade final)
	// --------------------------------------------------
	reservation := &models.Reservation{
		CustomerID: customer.ID,
		BarberID:   barberID,
		ServiceID:  in.ServiceID,
		StartTime:  in.SlotStart,
		EndTime:    in.SlotStart.Add(duration),
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Notificação (fire-and-forget, por flag)
	// --------------------------------------------------
	if uc.caps.SendSMS && uc.notifier != nil {
		uc.notifier.Dispatch(notify.Confirmation{
			Phone:         formattedPhone,
			Name:          customer.Name,
			FormattedTime: in.SlotStart.Format("02/01/2006 15:04"),
		})
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: reservation.ID.String(),
		})
	}

	return reservation, nil
}

// resolveCustomer finds the customer by normalized phone or creates one.
// A uniqueness violation on create means another booking won the race;
// that is recoverable, so we re-fetch instead of failing.
func (uc *CreateReservation) resolveCustomer(
	ctx context.Context,
	name string,
	formattedPhone string,
) (*models.Customer, error) {

	customer, err := uc.repo.FindCustomerByPhone(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}

	customer = &models.Customer{
		Name:  name,
		Phone: formattedPhone,
	}

	err = uc.repo.CreateCustomer(ctx, customer)
	if err == nil {
		return customer, nil
	}

	if httperr.IsBusiness(err, httperr.CodeDuplicatePhone) {
		existing, fetchErr := uc.repo.FindCustomerByPhone(ctx, formattedPhone)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if existing != nil {
			return existing, nil
		}
	}

	return nil, err
}

// assertNoActiveReservation purges the customer's past reservations and
// rejects the booking when a future one remains. The check spans all
// barbers.
func (uc *CreateReservation) assertNoActiveReservation(
	ctx context.Context,
	customerID uuid.UUID,
	now time.Time,
) error {

	reservations, err := uc.repo.ListReservationsForCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	hasPast := false
	for _, r := range reservations {
		if r.StartTime.Before(now) {
			hasPast = true
			continue
		}
		return httperr.ErrBusiness(httperr.CodeActiveReservation)
	}

	if hasPast {
		if err := uc.repo.DeletePastReservations(ctx, customerID, now); err != nil {
			log.Println("past reservation sweep failed:", err)
		}
	}

	return nil
}
