package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

// repositório em memória para os testes de use case
type fakeRepo struct {
	seq      uint
	bookings map[uint]models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[uint]models.Booking{}}
}

func (f *fakeRepo) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return fn(f)
}

func (f *fakeRepo) FindByUserAndDateForUpdate(
	ctx context.Context,
	userID uint,
	date string,
) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.ReservationDate == date {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, b *models.Booking) error {
	f.seq++
	b.ID = f.seq
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, b *models.Booking) error {
	b.UpdatedAt = time.Now()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := b
	return &out, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ReservationDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	delete(f.bookings, id)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// sink de auditoria descartável
type noopSink struct{}

func (noopSink) Log(*uint, string, string, *uint, any) error { return nil }
