package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

// Páginas renderizadas no servidor; o fluxo principal é a API JSON
type WebHandler struct {
	db *gorm.DB
}

func NewWebHandler(db *gorm.DB) *WebHandler {
	return &WebHandler{db: db}
}

func (h *WebHandler) Home(c *gin.Context) {
	var r models.Restaurant
	h.db.First(&r)

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":       "home",
		"Restaurant": r,
	})
}

func (h *WebHandler) About(c *gin.Context) {
	var r models.Restaurant
	h.db.First(&r)

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":       "about",
		"Restaurant": r,
	})
}

func (h *WebHandler) Menu(c *gin.Context) {
	var menus []models.Menu
	h.db.Order("id ASC").Find(&menus)

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":  "menu",
		"Menus": menus,
	})
}

func (h *WebHandler) MenuItem(c *gin.Context) {
	var menu models.Menu
	if err := h.db.First(&menu, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "base", gin.H{
			"Page": "menu_item",
		})
		return
	}

	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "menu_item",
		"Menu": menu,
	})
}

func (h *WebHandler) Book(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "book",
	})
}

// Reservations lista as reservas do dia (ou da data pedida via ?date=)
func (h *WebHandler) Reservations(c *gin.Context) {
	var r models.Restaurant
	h.db.First(&r)

	date := c.Query("date")
	if _, err := timezone.ParseDate(date, r.Timezone); err != nil {
		date = timezone.NowIn(r.Timezone).Format("2006-01-02")
	}

	var bookings []models.Booking
	h.db.Where("reservation_date = ?", date).
		Order("reservation_slot ASC").
		Find(&bookings)

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":     "reservations",
		"Date":     date,
		"Bookings": bookings,
	})
}
