package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/audit"
	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/httpresp"
	"github.com/killyross/barbershop-booking/internal/middleware"
	"github.com/killyross/barbershop-booking/internal/models"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Customer{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// BAN / UNBAN
// ======================================================

type BanCustomerRequest struct {
	Banned bool `json:"banned"`
}

func (h *CustomerHandler) SetBanned(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_customer_id", "Cliente inválido.")
		return
	}

	var req BanCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", customerID).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	customer.Banned = req.Banned
	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erro ao atualizar cliente.")
		return
	}

	action := "customer_unbanned"
	if req.Banned {
		action = "customer_banned"
	}

	actorID, _ := middleware.Actor(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "customer",
		EntityID: customer.ID.String(),
	})

	httpresp.OK(c, customer)
}

// ======================================================
// DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_customer_id", "Cliente inválido.")
		return
	}

	if err := h.db.Delete(&models.Customer{}, "id = ?", customerID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao remover cliente.")
		return
	}

	actorID, _ := middleware.Actor(c)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: customerID.String(),
	})

	c.Status(http.StatusNoContent)
}
