package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
)

const testTZ = "America/Sao_Paulo"

func newResolver(repo *fakeRepo) *ResolveBooking {
	return NewResolveBooking(repo, audit.NewDispatcher(noopSink{}), testTZ)
}

func TestResolveBooking_CreatesNewBooking(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	b, created, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID:    1,
		FirstName: "Ana",
		Date:      "2024-05-01",
		Slot:      12,
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(1), b.UserID)
	assert.Equal(t, "Ana", b.FirstName)
	assert.Equal(t, "2024-05-01", b.ReservationDate)
	assert.Equal(t, 12, b.ReservationSlot)
	assert.Len(t, repo.bookings, 1)
}

func TestResolveBooking_UpsertsSameUserAndDate(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	first, created, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID:    1,
		FirstName: "Ana",
		Date:      "2024-05-01",
		Slot:      12,
	})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID:    1,
		FirstName: "Ana B",
		Date:      "2024-05-01",
		Slot:      14,
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID, "mesma linha, não uma nova")
	assert.Equal(t, uint(1), second.UserID)
	assert.Equal(t, "Ana B", second.FirstName)
	assert.Equal(t, 14, second.ReservationSlot)
	assert.Len(t, repo.bookings, 1)
}

func TestResolveBooking_DifferentDatesCreateSeparateRows(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	_, created, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "2024-05-01", Slot: 12,
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "2024-05-02", Slot: 12,
	})
	require.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, repo.bookings, 2)
}

func TestResolveBooking_DifferentUsersMayShareSlot(t *testing.T) {
	// política upsert-por-usuário-por-dia: não há conflito entre usuários
	repo := newFakeRepo()
	uc := newResolver(repo)

	_, created, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "2024-05-01", Slot: 12,
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 2, FirstName: "Bia", Date: "2024-05-01", Slot: 12,
	})
	require.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, repo.bookings, 2)
}

func TestResolveBooking_InvalidSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	for _, slot := range []int{9, 21, 0, -1} {
		_, _, err := uc.Execute(context.Background(), ResolveBookingInput{
			UserID: 1, FirstName: "Ana", Date: "2024-05-01", Slot: slot,
		})

		require.Error(t, err, "slot %d", slot)
		assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
	}

	assert.Empty(t, repo.bookings, "nenhuma escrita após validação falhar")
}

func TestResolveBooking_BoundarySlots(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	_, _, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "2024-05-01", Slot: 10,
	})
	assert.NoError(t, err)

	_, _, err = uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 2, FirstName: "Bia", Date: "2024-05-01", Slot: 20,
	})
	assert.NoError(t, err)
}

func TestResolveBooking_MissingDate(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	_, _, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "", Slot: 12,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
	assert.Empty(t, repo.bookings)
}

func TestResolveBooking_InvalidDateFormat(t *testing.T) {
	repo := newFakeRepo()
	uc := newResolver(repo)

	_, _, err := uc.Execute(context.Background(), ResolveBookingInput{
		UserID: 1, FirstName: "Ana", Date: "01/05/2024", Slot: 12,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	assert.Empty(t, repo.bookings)
}
