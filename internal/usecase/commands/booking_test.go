//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/domain/booking"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_OccupiesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	assert.True(t, roomSnap.IsVacant)

	bookingSnap := f.createBooking(t, roomSnap.ID)
	assert.Equal(t, booking.StatusActive.String(), bookingSnap.Status)
	assert.Equal(t, "101", bookingSnap.RoomNumber)
	assert.Equal(t, roomSnap.Price, bookingSnap.RoomPrice)

	updated, err := f.roomRepo.FindByID(ctx, roomSnap.ID)
	require.NoError(t, err)
	assert.Equal(t, room.StatusOccupied.String(), updated.Status)
	assert.False(t, updated.IsVacant)
}

func TestCreateBooking_ValidationFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")

	tests := []struct {
		name  string
		input commands.CreateBookingInput
	}{
		{
			name: "check-out before check-in",
			input: commands.CreateBookingInput{
				RoomID:       roomSnap.ID,
				GuestName:    "Asha Verma",
				CheckInDate:  time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "empty guest name",
			input: commands.CreateBookingInput{
				RoomID:       roomSnap.ID,
				GuestName:    "   ",
				CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.bookings.CreateBooking(ctx, tt.input, f.adminID, user.RoleAdmin)
			require.ErrorIs(t, err, commands.ErrDomainValidation)

			assert.Empty(t, f.listDocs(t, docstore.CollectionBookings))
			current, err := f.roomRepo.FindByID(ctx, roomSnap.ID)
			require.NoError(t, err)
			assert.True(t, current.IsVacant)
		})
	}
}

func TestCreateBooking_SameDayStayIsLegal(t *testing.T) {
	f := newFixture(t)

	roomSnap := f.createRoom(t, "101")
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	snap, err := f.bookings.CreateBooking(context.Background(), commands.CreateBookingInput{
		RoomID:       roomSnap.ID,
		GuestName:    "Asha Verma",
		CheckInDate:  day,
		CheckOutDate: day,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, snap.CheckInDate, snap.CheckOutDate)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.CreateBooking(context.Background(), commands.CreateBookingInput{
		RoomID:       uuid.New(),
		GuestName:    "Asha Verma",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrRoomNotFound)
}

func TestCreateBooking_OccupiedRoomRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	f.createBooking(t, roomSnap.ID)

	_, err := f.bookings.CreateBooking(ctx, commands.CreateBookingInput{
		RoomID:       roomSnap.ID,
		GuestName:    "Ravi Kumar",
		CheckInDate:  time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrRoomOccupied)

	// The rejected request wrote nothing: one booking, room still occupied.
	assert.Len(t, f.listDocs(t, docstore.CollectionBookings), 1)
}

func TestCreateBooking_ClosedBookingFreesRoomForRebooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	first := f.createBooking(t, roomSnap.ID)

	_, err := f.bookings.CloseBooking(ctx, first.ID, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	second, err := f.bookings.CreateBooking(ctx, commands.CreateBookingInput{
		RoomID:       roomSnap.ID,
		GuestName:    "Ravi Kumar",
		CheckInDate:  time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusActive.String(), second.Status)
}

func TestCreateBooking_StaffCannotBookForeignRoom(t *testing.T) {
	f := newFixture(t)

	roomSnap := f.createRoom(t, "101") // created by admin

	_, err := f.bookings.CreateBooking(context.Background(), commands.CreateBookingInput{
		RoomID:       roomSnap.ID,
		GuestName:    "Asha Verma",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, f.staffID, user.RoleStaff)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)
	assert.Empty(t, f.listDocs(t, docstore.CollectionBookings))
}

func TestCreateBooking_EmployeeDenied(t *testing.T) {
	f := newFixture(t)

	roomSnap := f.createRoom(t, "101")
	_, err := f.bookings.CreateBooking(context.Background(), commands.CreateBookingInput{
		RoomID:       roomSnap.ID,
		GuestName:    "Asha Verma",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, f.staffID, user.RoleEmployee)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)
	assert.Empty(t, f.listDocs(t, docstore.CollectionBookings))
}

func TestCloseBooking_ReleasesRoomAndOpensCleaningTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, roomSnap.ID)

	closed, err := f.bookings.CloseBooking(ctx, bookingSnap.ID, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusClosed.String(), closed.Status)

	freed, err := f.roomRepo.FindByID(ctx, roomSnap.ID)
	require.NoError(t, err)
	assert.Equal(t, room.StatusAvailable.String(), freed.Status)
	assert.True(t, freed.IsVacant)
	assert.False(t, freed.CleaningDone)

	open, err := f.taskRepo.ListOpenByRoom(ctx, roomSnap.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, string(housekeeping.TaskPostCheckoutClean), open[0].TaskType)
	assert.Equal(t, housekeeping.StatusPending.String(), open[0].Status)
	assert.Equal(t, "101", open[0].RoomNumber)
}

func TestCloseBooking_TwiceIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, roomSnap.ID)

	_, err := f.bookings.CloseBooking(ctx, bookingSnap.ID, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	_, err = f.bookings.CloseBooking(ctx, bookingSnap.ID, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrBookingAlreadyClosed)

	// Still exactly one cleaning task.
	open, err := f.taskRepo.ListOpenByRoom(ctx, roomSnap.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestCloseBooking_OwnershipEnforcedForStaff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, roomSnap.ID) // created by admin

	_, err := f.bookings.CloseBooking(ctx, bookingSnap.ID, f.staffID, user.RoleStaff)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)

	// Managers see every record.
	_, err = f.bookings.CloseBooking(ctx, bookingSnap.ID, f.staffID, user.RoleManager)
	require.NoError(t, err)
}

func TestUpdateBooking_GuestPatchLeavesStayAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, roomSnap.ID)

	newName := "Ravi Kumar"
	updated, err := f.bookings.UpdateBooking(ctx, bookingSnap.ID, commands.UpdateBookingInput{
		GuestName: &newName,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", updated.GuestName)
	assert.Equal(t, bookingSnap.GuestAadhaar, updated.GuestAadhaar)
	assert.True(t, bookingSnap.CheckInDate.Equal(updated.CheckInDate))
	assert.True(t, bookingSnap.CheckOutDate.Equal(updated.CheckOutDate))
}

func TestUpdateBooking_RoomMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	oldRoom := f.createRoom(t, "101")
	newRoom := f.createRoom(t, "102")
	bookingSnap := f.createBooking(t, oldRoom.ID)

	updated, err := f.bookings.UpdateBooking(ctx, bookingSnap.ID, commands.UpdateBookingInput{
		RoomID: &newRoom.ID,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, newRoom.ID, updated.RoomID)
	assert.Equal(t, "102", updated.RoomNumber)

	released, err := f.roomRepo.FindByID(ctx, oldRoom.ID)
	require.NoError(t, err)
	assert.True(t, released.IsVacant)
	assert.Equal(t, room.StatusAvailable.String(), released.Status)

	occupied, err := f.roomRepo.FindByID(ctx, newRoom.ID)
	require.NoError(t, err)
	assert.False(t, occupied.IsVacant)

	// The vacated room gets a cleaning task.
	open, err := f.taskRepo.ListOpenByRoom(ctx, oldRoom.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestUpdateBooking_MoveToOccupiedRoomRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	firstRoom := f.createRoom(t, "101")
	secondRoom := f.createRoom(t, "102")
	firstBooking := f.createBooking(t, firstRoom.ID)
	f.createBooking(t, secondRoom.ID)

	_, err := f.bookings.UpdateBooking(ctx, firstBooking.ID, commands.UpdateBookingInput{
		RoomID: &secondRoom.ID,
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrRoomOccupied)

	// The move never happened.
	current, err := f.bookingRepo.FindByID(ctx, firstBooking.ID)
	require.NoError(t, err)
	assert.Equal(t, firstRoom.ID, current.RoomID)
	assert.Equal(t, "101", current.RoomNumber)
}

func TestUpdateBooking_ClosedBookingRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roomSnap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, roomSnap.ID)
	_, err := f.bookings.CloseBooking(ctx, bookingSnap.ID, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	newName := "Ravi Kumar"
	_, err = f.bookings.UpdateBooking(ctx, bookingSnap.ID, commands.UpdateBookingInput{
		GuestName: &newName,
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrBookingAlreadyClosed)
}
