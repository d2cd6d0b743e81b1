//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-ops/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("check-out after check-in", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2024, 1, 10), date(2024, 1, 12))
		require.NoError(t, err)
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("same-day stay is legal", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2024, 1, 10), date(2024, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 0, p.Nights())
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2024, 1, 12), date(2024, 1, 10))
		assert.ErrorIs(t, err, booking.ErrCheckOutBeforeCheckIn)
	})

	t.Run("time-of-day is ignored", func(t *testing.T) {
		checkIn := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)
		_, err := booking.NewStayPeriod(checkIn, checkOut)
		assert.NoError(t, err)
	})
}

func TestNewGuest(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		g, err := booking.NewGuest(" Asha Rao ", " 1234-5678-9012 ", " 9999999999 ", 1)
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", g.Name())
		assert.Equal(t, "1234-5678-9012", g.Aadhaar())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := booking.NewGuest("  ", "x", "y", 0)
		assert.ErrorIs(t, err, booking.ErrEmptyGuestName)
	})

	t.Run("negative extra guests rejected", func(t *testing.T) {
		_, err := booking.NewGuest("Asha", "x", "y", -1)
		assert.ErrorIs(t, err, booking.ErrNegativeExtraGuests)
	})
}

func TestBookingLifecycle(t *testing.T) {
	newActive := func(t *testing.T) *booking.Booking {
		t.Helper()
		guest, err := booking.NewGuest("Asha Rao", "1234", "9999999999", 0)
		require.NoError(t, err)
		stay, err := booking.NewStayPeriod(date(2024, 1, 10), date(2024, 1, 12))
		require.NoError(t, err)
		b, err := booking.NewBooking(guest, booking.RoomSpec{
			ID:         uuid.New(),
			RoomNumber: "101",
			PriceCents: 120_00,
		}, stay, "", uuid.New())
		require.NoError(t, err)
		return b
	}

	t.Run("new booking is active", func(t *testing.T) {
		b := newActive(t)
		assert.True(t, b.IsActive())
		assert.Equal(t, booking.StatusActive, b.Status())
		assert.Equal(t, "101", b.RoomNumber())
	})

	t.Run("missing room rejected", func(t *testing.T) {
		guest, _ := booking.NewGuest("Asha", "", "", 0)
		stay, _ := booking.NewStayPeriod(date(2024, 1, 10), date(2024, 1, 12))
		_, err := booking.NewBooking(guest, booking.RoomSpec{}, stay, "", uuid.New())
		assert.ErrorIs(t, err, booking.ErrMissingRoom)
	})

	t.Run("close transitions to closed once", func(t *testing.T) {
		b := newActive(t)
		require.NoError(t, b.Close())
		assert.Equal(t, booking.StatusClosed, b.Status())

		err := b.Close()
		assert.ErrorIs(t, err, booking.ErrAlreadyClosed)
	})

	t.Run("room move refreshes the snapshot", func(t *testing.T) {
		b := newActive(t)
		next := booking.RoomSpec{ID: uuid.New(), RoomNumber: "205", PriceCents: 180_00}
		require.NoError(t, b.MoveToRoom(next))
		assert.Equal(t, next.ID, b.RoomID())
		assert.Equal(t, "205", b.RoomNumber())
		assert.Equal(t, int64(180_00), b.RoomPriceCents())
	})

	t.Run("closed booking cannot move rooms", func(t *testing.T) {
		b := newActive(t)
		require.NoError(t, b.Close())
		err := b.MoveToRoom(booking.RoomSpec{ID: uuid.New(), RoomNumber: "205"})
		assert.ErrorIs(t, err, booking.ErrAlreadyClosed)
	})
}
