package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/httpresp"
	"github.com/killyross/barbershop-booking/internal/middleware"
	"github.com/killyross/barbershop-booking/internal/timezone"
	usecase "github.com/killyross/barbershop-booking/internal/usecase/booking"
)

type ReservationHandler struct {
	timezone string

	listUC    *usecase.ListBarberReservations
	confirmUC *usecase.ConfirmReservation
	deleteUC  *usecase.DeleteReservation
}

func NewReservationHandler(
	tz string,
	listUC *usecase.ListBarberReservations,
	confirmUC *usecase.ConfirmReservation,
	deleteUC *usecase.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		timezone:  tz,
		listUC:    listUC,
		confirmUC: confirmUC,
		deleteUC:  deleteUC,
	}
}

// ======================================================
// LIST (dashboard do barbeiro)
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	barberID, _ := middleware.Actor(c)

	daysAhead, _ := strconv.Atoi(c.DefaultQuery("days", "14"))
	search := c.Query("query")

	reservations, err := h.listUC.Execute(
		c.Request.Context(),
		barberID,
		daysAhead,
		search,
		timezone.NowIn(h.timezone),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// CONFIRM
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	actorID, isOwner := middleware.Actor(c)

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reserva inválida.")
		return
	}

	reservation, err := h.confirmUC.Execute(c.Request.Context(), reservationID, actorID, isOwner)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeReservationNotFound) {
			httperr.NotFound(c, httperr.CodeReservationNotFound, "Reserva não encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "A reserva já foi confirmada.")
			return
		}
		httperr.Internal(c, "confirm_failed", "Erro ao confirmar a reserva.")
		return
	}

	httpresp.OK(c, reservation)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	actorID, isOwner := middleware.Actor(c)

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reserva inválida.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), reservationID, actorID, isOwner); err != nil {
		if httperr.IsBusiness(err, httperr.CodeReservationNotFound) {
			httperr.NotFound(c, httperr.CodeReservationNotFound, "Reserva não encontrada.")
			return
		}
		httperr.Internal(c, "delete_failed", "Erro ao eliminar a reserva.")
		return
	}

	c.Status(http.StatusNoContent)
}
