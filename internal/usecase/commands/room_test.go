//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	f := newFixture(t)

	snap := f.createRoom(t, "101")
	assert.Equal(t, "101", snap.RoomNumber)
	assert.True(t, snap.IsVacant)
	assert.False(t, snap.CleaningDone)
	assert.Equal(t, f.adminID, snap.CreatedBy)
}

func TestCreateRoom_DuplicateNumberRejected(t *testing.T) {
	f := newFixture(t)

	f.createRoom(t, "101")
	_, err := f.rooms.CreateRoom(context.Background(), commands.CreateRoomInput{
		RoomNumber: "101",
		Type:       "single",
		Price:      100000,
	}, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrDuplicateRoomNumber)

	assert.Len(t, f.listDocs(t, docstore.CollectionRooms), 1)
}

func TestCreateRoom_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input commands.CreateRoomInput
	}{
		{"empty room number", commands.CreateRoomInput{RoomNumber: "  ", Price: 100}},
		{"negative price", commands.CreateRoomInput{RoomNumber: "101", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rooms.CreateRoom(ctx, tt.input, f.adminID, user.RoleAdmin)
			require.ErrorIs(t, err, commands.ErrDomainValidation)
			assert.Empty(t, f.listDocs(t, docstore.CollectionRooms))
		})
	}
}

func TestCreateRoom_StaffDenied(t *testing.T) {
	f := newFixture(t)

	_, err := f.rooms.CreateRoom(context.Background(), commands.CreateRoomInput{
		RoomNumber: "101",
		Price:      100000,
	}, f.staffID, user.RoleStaff)
	require.ErrorIs(t, err, commands.ErrPermissionDenied)
}

func TestUpdateRoom_PatchPreservesOtherFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap := f.createRoom(t, "101")

	price := int64(300000)
	updated, err := f.rooms.UpdateRoom(ctx, snap.ID, commands.UpdateRoomInput{
		Price: &price,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, int64(300000), updated.Price)
	assert.Equal(t, snap.RoomNumber, updated.RoomNumber)
	assert.Equal(t, snap.Type, updated.Type)
}

func TestDeleteRoom_BlockedWhileBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap := f.createRoom(t, "101")
	bookingSnap := f.createBooking(t, snap.ID)

	err := f.rooms.DeleteRoom(ctx, snap.ID, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrRoomHasActiveBooking)

	// Once the stay closes the room can go.
	_, err = f.bookings.CloseBooking(ctx, bookingSnap.ID, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, f.rooms.DeleteRoom(ctx, snap.ID, f.adminID, user.RoleAdmin))

	err = f.rooms.DeleteRoom(ctx, snap.ID, f.adminID, user.RoleAdmin)
	require.ErrorIs(t, err, commands.ErrRoomNotFound)
}
