//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"
	"hotel-ops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCache struct {
	payload []byte
	hits    int
	sets    int
}

func (c *recordingCache) Get(context.Context) ([]byte, bool, error) {
	if c.payload == nil {
		return nil, false, nil
	}
	c.hits++
	return c.payload, true, nil
}

func (c *recordingCache) Set(_ context.Context, payload []byte) error {
	c.sets++
	c.payload = payload
	return nil
}

func (c *recordingCache) Invalidate(context.Context) error {
	c.payload = nil
	return nil
}

type roomFixture struct {
	roomRepo    *repository.RoomRepository
	bookingRepo *repository.BookingRepository
	cache       *recordingCache
	queries     queries.RoomQueries
	owner       uuid.UUID
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()

	store := docstore.NewMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	roomRepo := repository.NewRoomRepository(store, clk)
	bookingRepo := repository.NewBookingRepository(store, clk)
	cache := &recordingCache{}

	return &roomFixture{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		queries:     queries.NewRoomQueries(roomRepo, bookingRepo, cache),
		owner:       uuid.New(),
	}
}

func (f *roomFixture) seedRoom(t *testing.T, number, storedStatus string, owner uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := f.roomRepo.Create(context.Background(), commands.RoomSnapshot{
		ID:         id,
		RoomNumber: number,
		Type:       "double",
		Price:      250000,
		CreatedBy:  owner,
		Status:     storedStatus,
		IsVacant:   storedStatus == room.StatusAvailable.String(),
	})
	require.NoError(t, err)
	return id
}

func (f *roomFixture) seedActiveBooking(t *testing.T, roomID uuid.UUID, owner uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := f.bookingRepo.Create(context.Background(), commands.BookingSnapshot{
		ID:           id,
		GuestName:    "Asha Verma",
		RoomID:       roomID,
		RoomNumber:   "101",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:       "active",
		CreatedBy:    owner,
	})
	require.NoError(t, err)
	return id
}

func TestRoomList_OccupancyDerivedFromBookings(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	// Stored flags are deliberately wrong both ways; the resolver must
	// override them.
	booked := f.seedRoom(t, "101", room.StatusAvailable.String(), f.owner)
	idle := f.seedRoom(t, "102", room.StatusOccupied.String(), f.owner)
	f.seedActiveBooking(t, booked, f.owner)

	views, err := f.queries.List(ctx, f.owner, user.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[uuid.UUID]string{}
	for _, v := range views {
		byID[v.ID] = v.Status
	}
	assert.Equal(t, room.StatusOccupied.String(), byID[booked])
	assert.Equal(t, room.StatusAvailable.String(), byID[idle])
}

func TestRoomList_ClosedBookingDoesNotOccupy(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	roomID := f.seedRoom(t, "101", room.StatusOccupied.String(), f.owner)
	bookingID := uuid.New()
	require.NoError(t, f.bookingRepo.Create(ctx, commands.BookingSnapshot{
		ID:           bookingID,
		GuestName:    "Asha Verma",
		RoomID:       roomID,
		CheckInDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
		Status:       "closed",
		CreatedBy:    f.owner,
	}))

	views, err := f.queries.List(ctx, f.owner, user.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, room.StatusAvailable.String(), views[0].Status)
	assert.True(t, views[0].IsVacant)
}

func TestRoomList_OwnerScopingForStaff(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	other := uuid.New()
	f.seedRoom(t, "101", room.StatusAvailable.String(), f.owner)
	f.seedRoom(t, "201", room.StatusAvailable.String(), other)

	mine, err := f.queries.List(ctx, f.owner, user.RoleStaff)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "101", mine[0].RoomNumber)

	all, err := f.queries.List(ctx, f.owner, user.RoleManager)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRoomList_CachesAllRecordsView(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	f.seedRoom(t, "101", room.StatusAvailable.String(), f.owner)

	first, err := f.queries.List(ctx, f.owner, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	second, err := f.queries.List(ctx, f.owner, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
	assert.Equal(t, first, second)

	// Staff listings bypass the shared cache.
	_, err = f.queries.List(ctx, f.owner, user.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)
}

func TestRoomGetByID(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	roomID := f.seedRoom(t, "101", room.StatusAvailable.String(), f.owner)
	f.seedActiveBooking(t, roomID, f.owner)

	view, err := f.queries.GetByID(ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, room.StatusOccupied.String(), view.Status)

	_, err = f.queries.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, queries.ErrRoomNotFound)
}
