package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/audit"
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/httpresp"
	"github.com/killyross/barbershop-booking/internal/middleware"
	"github.com/killyross/barbershop-booking/internal/models"
)

// Gestão de staff, apenas o dono.

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Active *bool   `json:"active"`
}

// ======================================================
// LIST (inclui inativos)
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("created_at ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// CREATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar barbeiro.")
		return
	}

	barber := models.Barber{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		Role:         middleware.RoleBarber,
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	actorID, _ := middleware.Actor(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: barber.ID.String(),
	})

	httpresp.Created(c, barber)
}

// ======================================================
// UPDATE (ativa/desativa, dados de contacto)
// ======================================================

func (h *BarberHandler) Update(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	actorID, _ := middleware.Actor(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: barber.ID.String(),
	})

	httpresp.OK(c, barber)
}

// ======================================================
// DELETE (preferir desativação; remoção definitiva suportada)
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	actorID, _ := middleware.Actor(c)
	if barberID == actorID {
		httperr.BadRequest(c, "cannot_delete_self", "Não pode remover a própria conta.")
		return
	}

	if err := h.db.Delete(&models.Barber{}, "id = ?", barberID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: barberID.String(),
	})

	c.Status(http.StatusNoContent)
}
