package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-ops/internal/domain/booking"
	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/metrics"
	"hotel-ops/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errs.New("booking not found")
	ErrBookingAlreadyClosed = errs.New("booking is already closed")
	ErrRoomOccupied         = errs.New("room already has an active booking")
)

type CreateBookingInput struct {
	RoomID       uuid.UUID
	GuestName    string
	GuestAadhaar string
	GuestMobile  string
	ExtraGuests  int
	CheckInDate  time.Time
	CheckOutDate time.Time
	DocumentKey  string
}

type UpdateBookingInput struct {
	RoomID       *uuid.UUID
	GuestName    *string
	GuestAadhaar *string
	GuestMobile  *string
	ExtraGuests  *int
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	DocumentKey  *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, actorID uuid.UUID, role user.Role) (*BookingSnapshot, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, input UpdateBookingInput, actorID uuid.UUID, role user.Role) (*BookingSnapshot, error)
	CloseBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, role user.Role) (*BookingSnapshot, error)
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	housekeeping HousekeepingCommands
	notifier     ChangeNotifier
	clock        clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	housekeeping HousekeepingCommands,
	notifier ChangeNotifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		housekeeping: housekeeping,
		notifier:     notifier,
		clock:        clock,
	}
}

// CreateBooking registers a stay and occupies the room. All validation
// runs before the first write so a rejected request leaves no trace.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	input CreateBookingInput,
	actorID uuid.UUID,
	role user.Role,
) (*BookingSnapshot, error) {
	if !user.Can(role, user.OpBookingCreate) {
		return nil, ErrPermissionDenied
	}

	roomSnap, err := b.findRoom(ctx, input.RoomID, actorID, role)
	if err != nil {
		return nil, err
	}
	if err := b.requireRoomFree(ctx, input.RoomID, uuid.Nil); err != nil {
		return nil, err
	}

	guest, err := booking.NewGuest(input.GuestName, input.GuestAadhaar, input.GuestMobile, input.ExtraGuests)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	stay, err := booking.NewStayPeriod(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := booking.NewBooking(guest, booking.RoomSpec{
		ID:         roomSnap.ID,
		RoomNumber: roomSnap.RoomNumber,
		PriceCents: roomSnap.Price,
	}, stay, input.DocumentKey, actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	snap := bookingToSnapshot(entity)
	if err := b.bookingRepo.Create(ctx, snap); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if err := b.occupyRoom(ctx, roomSnap.ID, true); err != nil {
		return nil, err
	}

	b.publish(ctx, snap.ID, "create")
	metrics.IncOperation("booking.create", "ok")

	return b.bookingRepo.FindByID(ctx, snap.ID)
}

func (b *bookingUseCaseImpl) UpdateBooking(
	ctx context.Context,
	id uuid.UUID,
	input UpdateBookingInput,
	actorID uuid.UUID,
	role user.Role,
) (*BookingSnapshot, error) {
	if !user.Can(role, user.OpBookingUpdate) {
		return nil, ErrPermissionDenied
	}

	current, err := b.findBooking(ctx, id, actorID, role)
	if err != nil {
		return nil, err
	}
	if current.Status == booking.StatusClosed.String() {
		return nil, ErrBookingAlreadyClosed
	}

	// Validate the merged guest and stay before writing anything.
	_, err = booking.NewGuest(
		patch.Coalesce(input.GuestName, current.GuestName),
		patch.Coalesce(input.GuestAadhaar, current.GuestAadhaar),
		patch.Coalesce(input.GuestMobile, current.GuestMobile),
		patch.Coalesce(input.ExtraGuests, current.ExtraGuests),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	stay, err := booking.NewStayPeriod(
		patch.Coalesce(input.CheckInDate, current.CheckInDate),
		patch.Coalesce(input.CheckOutDate, current.CheckOutDate),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingPatch := BookingPatch{
		GuestName:    input.GuestName,
		GuestAadhaar: input.GuestAadhaar,
		GuestMobile:  input.GuestMobile,
		ExtraGuests:  input.ExtraGuests,
		DocumentKey:  input.DocumentKey,
	}
	if input.CheckInDate != nil || input.CheckOutDate != nil {
		checkIn := stay.CheckIn()
		checkOut := stay.CheckOut()
		bookingPatch.CheckInDate = &checkIn
		bookingPatch.CheckOutDate = &checkOut
	}

	// A room move releases the old room (opening a cleaning task for it)
	// and occupies the new one.
	moving := input.RoomID != nil && *input.RoomID != current.RoomID
	if moving {
		newRoom, err := b.findRoom(ctx, *input.RoomID, actorID, role)
		if err != nil {
			return nil, err
		}
		if err := b.requireRoomFree(ctx, newRoom.ID, id); err != nil {
			return nil, err
		}
		bookingPatch.RoomID = &newRoom.ID
		bookingPatch.RoomNumber = &newRoom.RoomNumber
		bookingPatch.RoomPrice = &newRoom.Price
	}

	if err := b.bookingRepo.Update(ctx, id, bookingPatch); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	if moving {
		if err := b.releaseRoom(ctx, current.RoomID, current.RoomNumber, actorID); err != nil {
			return nil, err
		}
		if err := b.occupyRoom(ctx, *input.RoomID, true); err != nil {
			return nil, err
		}
	}

	b.publish(ctx, id, "update")
	metrics.IncOperation("booking.update", "ok")

	return b.bookingRepo.FindByID(ctx, id)
}

// CloseBooking checks the guest out: the booking closes, the room goes
// back to available with cleaningDone reset, and a post-checkout cleaning
// task is opened unless the room already has one.
func (b *bookingUseCaseImpl) CloseBooking(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	role user.Role,
) (*BookingSnapshot, error) {
	if !user.Can(role, user.OpBookingClose) {
		return nil, ErrPermissionDenied
	}

	current, err := b.findBooking(ctx, id, actorID, role)
	if err != nil {
		return nil, err
	}

	entity := bookingFromSnapshot(current)
	if err := entity.Close(); err != nil {
		return nil, errs.Mark(err, ErrBookingAlreadyClosed)
	}

	status := entity.Status().String()
	if err := b.bookingRepo.Update(ctx, id, BookingPatch{Status: &status}); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// The room only frees up if no other active booking still holds it.
	remaining, err := b.bookingRepo.ListActiveByRoom(ctx, current.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if len(remaining) == 0 {
		if err := b.releaseRoom(ctx, current.RoomID, current.RoomNumber, actorID); err != nil {
			return nil, err
		}
	}

	b.publish(ctx, id, "update")
	metrics.IncOperation("booking.close", "ok")

	return b.bookingRepo.FindByID(ctx, id)
}

func (b *bookingUseCaseImpl) findBooking(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*BookingSnapshot, error) {
	snap, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !role.SeesAllRecords() && snap.CreatedBy != actorID {
		return nil, ErrPermissionDenied
	}
	return snap, nil
}

func (b *bookingUseCaseImpl) findRoom(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*RoomSnapshot, error) {
	snap, err := b.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	if !role.SeesAllRecords() && snap.CreatedBy != actorID {
		return nil, ErrPermissionDenied
	}
	return snap, nil
}

// requireRoomFree rejects a booking write when the room already carries an
// active booking other than exclude. The store has no unique constraint
// for this, so the check lives here.
func (b *bookingUseCaseImpl) requireRoomFree(ctx context.Context, roomID, exclude uuid.UUID) error {
	active, err := b.bookingRepo.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	for _, snap := range active {
		if snap.ID != exclude {
			return ErrRoomOccupied
		}
	}
	return nil
}

func (b *bookingUseCaseImpl) occupyRoom(ctx context.Context, roomID uuid.UUID, occupied bool) error {
	status := room.StatusAvailable.String()
	if occupied {
		status = room.StatusOccupied.String()
	}
	vacant := !occupied
	err := b.roomRepo.Update(ctx, roomID, RoomPatch{Status: &status, IsVacant: &vacant})
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	b.publishRoom(ctx, roomID)
	return nil
}

func (b *bookingUseCaseImpl) releaseRoom(ctx context.Context, roomID uuid.UUID, roomNumber string, actorID uuid.UUID) error {
	status := room.StatusAvailable.String()
	vacant := true
	dirty := false
	err := b.roomRepo.Update(ctx, roomID, RoomPatch{
		Status:       &status,
		IsVacant:     &vacant,
		CleaningDone: &dirty,
	})
	if err != nil {
		return errs.Mark(err, ErrStoreOperationFailed)
	}
	b.publishRoom(ctx, roomID)

	if _, err := b.housekeeping.EnsureTask(ctx, roomID, roomNumber, housekeeping.TaskPostCheckoutClean, actorID); err != nil {
		return err
	}
	return nil
}

func (b *bookingUseCaseImpl) publish(ctx context.Context, id uuid.UUID, op string) {
	event := ChangeEvent{Collection: docstore.CollectionBookings, ID: id, Op: op}
	if err := b.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish booking change", "booking_id", id, "error", err)
	}
}

func (b *bookingUseCaseImpl) publishRoom(ctx context.Context, id uuid.UUID) {
	event := ChangeEvent{Collection: docstore.CollectionRooms, ID: id, Op: "update"}
	if err := b.notifier.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish room change", "room_id", id, "error", err)
	}
}

func bookingToSnapshot(e *booking.Booking) BookingSnapshot {
	return BookingSnapshot{
		ID:           e.ID(),
		GuestName:    e.Guest().Name(),
		GuestAadhaar: e.Guest().Aadhaar(),
		GuestMobile:  e.Guest().Mobile(),
		ExtraGuests:  e.Guest().ExtraGuests(),
		RoomID:       e.RoomID(),
		RoomNumber:   e.RoomNumber(),
		RoomPrice:    e.RoomPriceCents(),
		CheckInDate:  e.Stay().CheckIn(),
		CheckOutDate: e.Stay().CheckOut(),
		Status:       e.Status().String(),
		DocumentKey:  e.DocumentKey(),
		CreatedBy:    e.CreatedBy(),
	}
}

func bookingFromSnapshot(s *BookingSnapshot) *booking.Booking {
	guest, _ := booking.NewGuest(s.GuestName, s.GuestAadhaar, s.GuestMobile, s.ExtraGuests)
	stay, _ := booking.NewStayPeriod(s.CheckInDate, s.CheckOutDate)
	return booking.Reconstruct(
		s.ID,
		guest,
		booking.RoomSpec{ID: s.RoomID, RoomNumber: s.RoomNumber, PriceCents: s.RoomPrice},
		stay,
		booking.Status(s.Status),
		s.DocumentKey,
		s.CreatedBy,
		s.CreatedAt,
		s.UpdatedAt,
	)
}
