package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
)

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, testTZ)

	seedBooking(t, repo, 1, "2024-05-01", 12)
	seedBooking(t, repo, 2, "2024-05-01", 18)
	seedBooking(t, repo, 3, "2024-05-02", 12) // outro dia, não conta

	slots, err := uc.Execute(context.Background(), "2024-05-01")

	require.NoError(t, err)
	require.Len(t, slots, 11) // 10..20

	for _, s := range slots {
		switch s.Slot {
		case 12, 18:
			assert.True(t, s.Taken, "slot %d", s.Slot)
		default:
			assert.False(t, s.Taken, "slot %d", s.Slot)
		}
	}
}

func TestGetAvailability_MissingDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, testTZ)

	_, err := uc.Execute(context.Background(), "")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
}
