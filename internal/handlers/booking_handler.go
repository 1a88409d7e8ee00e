package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-booking/internal/dto"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-booking/internal/middleware"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/restaurant-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	resolveUC      *ucBooking.ResolveBooking
	listUC         *ucBooking.ListBookings
	getUC          *ucBooking.GetBooking
	deleteUC       *ucBooking.DeleteBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewBookingHandler(
	resolveUC *ucBooking.ResolveBooking,
	listUC *ucBooking.ListBookings,
	getUC *ucBooking.GetBooking,
	deleteUC *ucBooking.DeleteBooking,
	availabilityUC *ucBooking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		resolveUC:      resolveUC,
		listUC:         listUC,
		getUC:          getUC,
		deleteUC:       deleteUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	ReservationDate string `json:"reservation_date"`
	ReservationSlot int    `json:"reservation_slot"`
}

// ======================================================
// HELPERS
// ======================================================

func requester(c *gin.Context) (uint, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	isSuperuser, _ := c.MustGet(middleware.ContextIsSuperuser).(bool)
	return userID, isSuperuser
}

func toBookingDTO(b *models.Booking) dto.BookingDTO {
	return dto.BookingDTO{
		ID:              b.ID,
		User:            b.User.Username,
		FirstName:       b.FirstName,
		ReservationDate: b.ReservationDate,
		ReservationSlot: b.ReservationSlot,
		CreatedAt:       b.CreatedAt,
	}
}

func mapBookingErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "invalid_slot":
		httperr.BadRequest(c, code, "Horário da reserva deve estar entre 10 e 20.")
	case "missing_date":
		httperr.BadRequest(c, code, "Data da reserva obrigatória.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Data da reserva inválida (use YYYY-MM-DD).")
	case "booking_not_found":
		httperr.NotFound(c, code, "Reserva não encontrada.")
	case "forbidden":
		httperr.Forbidden(c, code, "Sem permissão para esta reserva.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// ======================================================
// CREATE (resolver: 201 criada / 200 atualizada)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := requester(c)
	username, _ := c.MustGet(middleware.ContextUsername).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, created, err := h.resolveUC.Execute(
		c.Request.Context(),
		ucBooking.ResolveBookingInput{
			UserID:    userID,
			FirstName: req.FirstName,
			Date:      req.ReservationDate,
			Slot:      req.ReservationSlot,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	// o resolver não carrega o User da reserva; o nome vem do token
	out := toBookingDTO(b)
	out.User = username

	c.JSON(status, gin.H{
		"booking": out,
		"created": created,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID, isSuperuser := requester(c)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, isSuperuser)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingDTO(&bookings[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// GET / DELETE
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	userID, isSuperuser := requester(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), userID, isSuperuser, uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, toBookingDTO(b))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, isSuperuser := requester(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, isSuperuser, uint(id)); err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	slots, err := h.availabilityUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  c.Query("date"),
		"slots": slots,
	})
}
