package booking

import (
	"net/http"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// ===============================
// Access Policy
// ===============================

// OwnerOrSuperuser libera leitura/remoção de uma reserva para o dono ou superusuário
func OwnerOrSuperuser(requesterID uint, isSuperuser bool, b *models.Booking) bool {
	if isSuperuser {
		return true
	}
	return b != nil && b.UserID == requesterID
}

// SuperuserOrReadOnly: leitura liberada para todos, escrita só para superusuário
func SuperuserOrReadOnly(method string, isSuperuser bool) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return isSuperuser
}
