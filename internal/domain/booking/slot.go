package booking

import "github.com/BruksfildServices01/restaurant-booking/internal/httperr"

// ===============================
// Reservation Slot
// ===============================

// Horários de atendimento do salão: 10h às 20h, um assento por hora
const (
	MinSlot = 10
	MaxSlot = 20
)

// ValidateSlot aceita apenas horários dentro da faixa de atendimento
func ValidateSlot(slot int) (int, error) {
	if slot < MinSlot || slot > MaxSlot {
		return 0, httperr.ErrBusiness("invalid_slot")
	}
	return slot, nil
}
