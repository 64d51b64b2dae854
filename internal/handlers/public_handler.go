package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/httpresp"
	"github.com/killyross/barbershop-booking/internal/models"
	"github.com/killyross/barbershop-booking/internal/timezone"
	usecase "github.com/killyross/barbershop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db       *gorm.DB
	timezone string

	bookingViewUC *usecase.GetBookingView
	createUC      *usecase.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	tz string,
	bookingViewUC *usecase.GetBookingView,
	createUC *usecase.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		timezone:      tz,
		bookingViewUC: bookingViewUC,
		createUC:      createUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateReservationRequest struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	SlotStart time.Time  `json:"slot_start" binding:"required"`
	BarberID  *uuid.UUID `json:"barber_id"`
	ServiceID *uuid.UUID `json:"service_id"`
}

// ======================================================
// BARBERS / SERVICES
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("price ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// BOOKING VIEW
// ======================================================

func (h *PublicHandler) BookingView(c *gin.Context) {
	var barberID *uuid.UUID
	if raw := c.Query("barber_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		barberID = &id
	}

	now := timezone.NowIn(h.timezone)

	slots, err := h.bookingViewUC.Execute(c.Request.Context(), barberID, now)
	if err != nil {
		httperr.Internal(c, "booking_view_failed", "Erro ao calcular horários.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE RESERVATION
// ======================================================

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	reservation, err := h.createUC.Execute(c.Request.Context(), usecase.CreateReservationInput{
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		SlotStart:     req.SlotStart.In(timezone.Location(h.timezone)),
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"reservation": gin.H{
			"id":         reservation.ID,
			"start_time": reservation.StartTime,
			"end_time":   reservation.EndTime,
			"barber_id":  reservation.BarberID,
			"status":     reservation.Status,
		},
	})
}

// writeBookingError traduz a taxonomia de negócio para HTTP.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeInvalidPhoneFormat):
		httperr.BadRequest(c, httperr.CodeInvalidPhoneFormat,
			"Número de telefone inválido.")

	case httperr.IsBusiness(err, httperr.CodeInvalidPhone):
		httperr.BadRequest(c, httperr.CodeInvalidPhone,
			"O número de telefone não parece existir.")

	case httperr.IsBusiness(err, httperr.CodeDuplicatePhone):
		httperr.Conflict(c, httperr.CodeDuplicatePhone,
			"Já existe uma reserva com este número de telemóvel.")

	case httperr.IsBusiness(err, httperr.CodeCustomerBanned):
		httperr.Forbidden(c, httperr.CodeCustomerBanned,
			"Não é possível criar reservas com este número.")

	case httperr.IsBusiness(err, httperr.CodeActiveReservation):
		httperr.Conflict(c, httperr.CodeActiveReservation,
			"Já tem uma reserva ativa. Não é possível fazer mais que uma reserva.")

	case httperr.IsBusiness(err, httperr.CodeNoBarbersAvailable):
		httperr.Conflict(c, httperr.CodeNoBarbersAvailable,
			"Não há barbeiros disponíveis.")

	default:
		httperr.Internal(c, "reservation_failed", "Erro ao criar a reserva.")
	}
}
