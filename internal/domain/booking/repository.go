package booking

import (
	"context"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type Repository interface {
	// -------- Transação (check-then-write) --------
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Booking (resolver) --------
	FindByUserAndDateForUpdate(
		ctx context.Context,
		userID uint,
		date string,
	) (*models.Booking, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (consulta / remoção) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListAll(
		ctx context.Context,
	) ([]models.Booking, error)

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	Delete(
		ctx context.Context,
		id uint,
	) error
}
