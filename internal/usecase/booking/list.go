package booking

import (
	"context"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute: superusuário enxerga todas as reservas, usuário comum só as próprias
func (uc *ListBookings) Execute(
	ctx context.Context,
	requesterID uint,
	isSuperuser bool,
) ([]models.Booking, error) {

	if isSuperuser {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListByUser(ctx, requesterID)
}
