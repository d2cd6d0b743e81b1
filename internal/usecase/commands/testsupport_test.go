//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra/blobstore"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/infra/repository"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires the full command stack over the in-memory store so the
// lifecycle tests exercise real repositories end to end.
type fixture struct {
	store    *docstore.MemoryStore
	clock    *clock.MockClock
	blobs    *blobstore.MemoryBlobStore
	rooms    commands.RoomCommands
	bookings commands.BookingCommands
	tasks    commands.HousekeepingCommands
	foods    commands.FoodCommands
	custs    commands.CustomerCommands

	roomRepo    *repository.RoomRepository
	bookingRepo *repository.BookingRepository
	taskRepo    *repository.TaskRepository

	adminID uuid.UUID
	staffID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := docstore.NewMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	blobs := blobstore.NewMemoryBlobStore()
	notifier := commands.NopNotifier{}

	roomRepo := repository.NewRoomRepository(store, clk)
	bookingRepo := repository.NewBookingRepository(store, clk)
	taskRepo := repository.NewTaskRepository(store, clk)
	customerRepo := repository.NewCustomerRepository(store, clk)
	foodRepo := repository.NewFoodRepository(store, clk)

	tasks := commands.NewHousekeepingUseCase(taskRepo, roomRepo, notifier, clk)

	return &fixture{
		store:       store,
		clock:       clk,
		blobs:       blobs,
		rooms:       commands.NewRoomUseCase(roomRepo, bookingRepo, notifier, clk),
		bookings:    commands.NewBookingUseCase(bookingRepo, roomRepo, tasks, notifier, clk),
		tasks:       tasks,
		foods:       commands.NewFoodUseCase(foodRepo, blobs, notifier),
		custs:       commands.NewCustomerUseCase(customerRepo, notifier),
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		taskRepo:    taskRepo,
		adminID:     uuid.New(),
		staffID:     uuid.New(),
	}
}

func (f *fixture) createRoom(t *testing.T, number string) *commands.RoomSnapshot {
	t.Helper()
	snap, err := f.rooms.CreateRoom(context.Background(), commands.CreateRoomInput{
		RoomNumber: number,
		Type:       "double",
		Price:      250000,
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	return snap
}

func (f *fixture) createBooking(t *testing.T, roomID uuid.UUID) *commands.BookingSnapshot {
	t.Helper()
	snap, err := f.bookings.CreateBooking(context.Background(), commands.CreateBookingInput{
		RoomID:       roomID,
		GuestName:    "Asha Verma",
		GuestAadhaar: "123412341234",
		GuestMobile:  "9876543210",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}, f.adminID, user.RoleAdmin)
	require.NoError(t, err)
	return snap
}

func (f *fixture) listDocs(t *testing.T, collection string) []docstore.Document {
	t.Helper()
	docs, err := f.store.List(context.Background(), collection)
	require.NoError(t, err)
	return docs
}
