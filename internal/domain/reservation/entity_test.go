//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/domain/reservation"
	"github.com/CamiloCortesM/nex-stay/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, in, out time.Time) reservation.StayRange {
	t.Helper()
	stay, err := reservation.NewStayRange(in, out)
	require.NoError(t, err)
	return stay
}

func doubleRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom(1, room.TypeDouble, room.ViewExterior, 100000, 2)
	require.NoError(t, err)
	return r
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := reservation.NewStayRange(date(2025, 1, 1), date(2025, 1, 5))
		require.NoError(t, err)
		assert.Equal(t, 4, stay.Nights())
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2025, 1, 1), date(2025, 1, 1))
		assert.ErrorIs(t, err, reservation.ErrEmptyStayRange)
	})

	t.Run("inverted dates rejected", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2025, 1, 5), date(2025, 1, 1))
		assert.ErrorIs(t, err, reservation.ErrInvertedStayRange)
	})

	t.Run("time of day is normalized away", func(t *testing.T) {
		stay, err := reservation.NewStayRange(
			time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 1, 1), stay.CheckIn())
		assert.Equal(t, date(2025, 1, 3), stay.CheckOut())
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := mustStay(t, date(2025, 1, 1), date(2025, 1, 5))

	testCases := []struct {
		name     string
		other    reservation.StayRange
		overlaps bool
	}{
		{"touching boundary does not conflict", mustStay(t, date(2025, 1, 5), date(2025, 1, 8)), false},
		{"overlapping tail conflicts", mustStay(t, date(2025, 1, 4), date(2025, 1, 6)), true},
		{"contained range conflicts", mustStay(t, date(2025, 1, 2), date(2025, 1, 3)), true},
		{"enclosing range conflicts", mustStay(t, date(2024, 12, 30), date(2025, 1, 10)), true},
		{"earlier touching boundary does not conflict", mustStay(t, date(2024, 12, 28), date(2025, 1, 1)), false},
		{"disjoint earlier range does not conflict", mustStay(t, date(2024, 12, 20), date(2024, 12, 25)), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestNewReservation(t *testing.T) {
	stay := mustStay(t, date(2025, 3, 3), date(2025, 3, 8))

	t.Run("success", func(t *testing.T) {
		res, err := reservation.NewReservation(doubleRoom(t), uuid.New(), stay, 2, true)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusActive, res.Status())
		assert.Equal(t, int64(720000), res.TotalPrice())
		assert.True(t, res.IsActive())
	})

	t.Run("people out of bounds", func(t *testing.T) {
		for _, people := range []int32{0, 5, -1} {
			_, err := reservation.NewReservation(doubleRoom(t), uuid.New(), stay, people, false)
			assert.ErrorIs(t, err, reservation.ErrInvalidPeopleCount, "people=%d", people)
		}
	})

	t.Run("room too small", func(t *testing.T) {
		_, err := reservation.NewReservation(doubleRoom(t), uuid.New(), stay, 3, false)
		assert.ErrorIs(t, err, reservation.ErrRoomTooSmall)
	})
}

func TestReservationCancel(t *testing.T) {
	stay := mustStay(t, date(2025, 3, 3), date(2025, 3, 8))
	res, err := reservation.NewReservation(doubleRoom(t), uuid.New(), stay, 2, false)
	require.NoError(t, err)

	require.NoError(t, res.Cancel())
	assert.Equal(t, reservation.StatusCancelled, res.Status())
	assert.False(t, res.IsActive())

	// Terminal state: a second cancel is always the same error.
	assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
}

func TestConflictsWith(t *testing.T) {
	stay := mustStay(t, date(2025, 1, 1), date(2025, 1, 5))
	touching := mustStay(t, date(2025, 1, 5), date(2025, 1, 8))
	overlapping := mustStay(t, date(2025, 1, 4), date(2025, 1, 6))

	a, err := reservation.NewReservation(doubleRoom(t), uuid.New(), stay, 2, false)
	require.NoError(t, err)

	b, err := reservation.NewReservation(doubleRoom(t), uuid.New(), overlapping, 2, false)
	require.NoError(t, err)
	assert.True(t, a.ConflictsWith(b))

	c, err := reservation.NewReservation(doubleRoom(t), uuid.New(), touching, 2, false)
	require.NoError(t, err)
	assert.False(t, a.ConflictsWith(c))

	// Cancelled reservations never conflict.
	require.NoError(t, b.Cancel())
	assert.False(t, a.ConflictsWith(b))
}
