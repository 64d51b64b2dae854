package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/middleware"
	"github.com/killyross/barbershop-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	barberID, isOwner := middleware.Actor(c)

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "barber_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber": gin.H{
			"id":     barber.ID,
			"name":   barber.Name,
			"phone":  barber.Phone,
			"role":   barber.Role,
			"active": barber.Active,
		},
		"is_owner": isOwner,
	})
}
