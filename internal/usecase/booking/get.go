package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	requesterID uint,
	isSuperuser bool,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !domain.OwnerOrSuperuser(requesterID, isSuperuser, b) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return b, nil
}
