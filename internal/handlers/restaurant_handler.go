package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/middleware"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

type RestaurantHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewRestaurantHandler(db *gorm.DB, audit *audit.Dispatcher) *RestaurantHandler {
	return &RestaurantHandler{db: db, audit: audit}
}

// --------- Requests ---------

type UpdateRestaurantRequest struct {
	Name     *string `json:"name,omitempty"`
	About    *string `json:"about,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// --------- Handlers ---------

func (h *RestaurantHandler) Get(c *gin.Context) {
	var r models.Restaurant
	if err := h.db.First(&r).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurante não configurado.")
		return
	}

	c.JSON(http.StatusOK, r)
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	var r models.Restaurant
	if err := h.db.First(&r).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			httperr.Internal(c, "failed_to_get_restaurant", "Erro ao buscar restaurante.")
			return
		}
		// primeiro acesso cria o perfil
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.About != nil {
		r.About = *req.About
	}
	if req.Phone != nil {
		r.Phone = *req.Phone
	}
	if req.Address != nil {
		r.Address = *req.Address
	}
	if req.Timezone != nil {
		r.Timezone = *req.Timezone
	}

	if err := h.db.Save(&r).Error; err != nil {
		httperr.Internal(c, "failed_to_update_restaurant", "Erro ao atualizar restaurante.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "restaurant_updated",
		Entity:   "restaurant",
		EntityID: &r.ID,
	})

	c.JSON(http.StatusOK, r)
}
