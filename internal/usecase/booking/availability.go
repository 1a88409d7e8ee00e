package booking

import (
	"context"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

type SlotAvailability struct {
	Slot  int  `json:"slot"`
	Taken bool `json:"taken"`
}

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute lista os horários do dia com a marcação de ocupado
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]SlotAvailability, error) {

	if dateStr == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	parsed, err := timezone.ParseDate(dateStr, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	date := parsed.Format("2006-01-02")

	bookings, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]bool, len(bookings))
	for _, b := range bookings {
		taken[b.ReservationSlot] = true
	}

	var slots []SlotAvailability
	for s := domain.MinSlot; s <= domain.MaxSlot; s++ {
		slots = append(slots, SlotAvailability{
			Slot:  s,
			Taken: taken[s],
		})
	}

	return slots, nil
}
