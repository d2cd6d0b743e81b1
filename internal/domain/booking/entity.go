package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed = errors.New("booking is already closed")
	ErrMissingRoom   = errors.New("booking must reference a room")
)

// RoomSpec is the denormalized slice of the booked room kept on the
// booking document, so listings don't need a join.
type RoomSpec struct {
	ID         uuid.UUID
	RoomNumber string
	PriceCents int64
}

type Booking struct {
	id          uuid.UUID
	guest       Guest
	roomID      uuid.UUID
	roomNumber  string
	roomPrice   int64
	stay        StayPeriod
	status      Status
	documentKey string
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(guest Guest, room RoomSpec, stay StayPeriod, documentKey string, createdBy uuid.UUID) (*Booking, error) {
	if room.ID == uuid.Nil {
		return nil, ErrMissingRoom
	}

	return &Booking{
		id:          uuid.New(),
		guest:       guest,
		roomID:      room.ID,
		roomNumber:  room.RoomNumber,
		roomPrice:   room.PriceCents,
		stay:        stay,
		status:      StatusActive,
		documentKey: documentKey,
		createdBy:   createdBy,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	guest Guest,
	room RoomSpec,
	stay StayPeriod,
	status Status,
	documentKey string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		guest:       guest,
		roomID:      room.ID,
		roomNumber:  room.RoomNumber,
		roomPrice:   room.PriceCents,
		stay:        stay,
		status:      status,
		documentKey: documentKey,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

// Close marks the booking checked out. Closing twice is a conflict; the
// caller decides how to surface it.
func (b *Booking) Close() error {
	if b.status == StatusClosed {
		return ErrAlreadyClosed
	}
	b.status = StatusClosed
	return nil
}

// MoveToRoom re-points an active booking at a different room, refreshing
// the denormalized snapshot.
func (b *Booking) MoveToRoom(room RoomSpec) error {
	if room.ID == uuid.Nil {
		return ErrMissingRoom
	}
	if b.status == StatusClosed {
		return ErrAlreadyClosed
	}
	b.roomID = room.ID
	b.roomNumber = room.RoomNumber
	b.roomPrice = room.PriceCents
	return nil
}

func (b *Booking) UpdateGuest(guest Guest) {
	b.guest = guest
}

func (b *Booking) UpdateStay(stay StayPeriod) {
	b.stay = stay
}

func (b *Booking) AttachDocument(key string) {
	b.documentKey = key
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) Guest() Guest          { return b.guest }
func (b *Booking) RoomID() uuid.UUID     { return b.roomID }
func (b *Booking) RoomNumber() string    { return b.roomNumber }
func (b *Booking) RoomPriceCents() int64 { return b.roomPrice }
func (b *Booking) Stay() StayPeriod      { return b.stay }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) DocumentKey() string   { return b.documentKey }
func (b *Booking) CreatedBy() uuid.UUID  { return b.createdBy }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
