package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	requesterID uint,
	isSuperuser bool,
	bookingID uint,
) error {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return err
	}

	// política avaliada antes de qualquer escrita
	if !domain.OwnerOrSuperuser(requesterID, isSuperuser, b) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.Delete(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"date": b.ReservationDate,
			"slot": b.ReservationSlot,
		},
	})

	return nil
}
