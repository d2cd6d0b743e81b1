package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number must not be empty")
	ErrNegativePrice   = errors.New("nightly price cannot be negative")
)

// Room carries the stored flags plus the derived occupancy status. The
// stored cleaningDone/payment flags are informational; occupancy is only
// authoritative after ResolveStatuses has been applied.
type Room struct {
	id              uuid.UUID
	roomNumber      string
	roomType        string
	priceCents      int64
	cleaningDone    bool
	paymentReceived bool
	paymentMethod   string
	documentKey     string
	createdBy       uuid.UUID
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRoom(roomNumber, roomType string, priceCents int64, createdBy uuid.UUID) (*Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Room{
		id:         uuid.New(),
		roomNumber: roomNumber,
		roomType:   strings.TrimSpace(roomType),
		priceCents: priceCents,
		createdBy:  createdBy,
		status:     StatusAvailable,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	roomNumber, roomType string,
	priceCents int64,
	cleaningDone, paymentReceived bool,
	paymentMethod, documentKey string,
	createdBy uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:              id,
		roomNumber:      roomNumber,
		roomType:        roomType,
		priceCents:      priceCents,
		cleaningDone:    cleaningDone,
		paymentReceived: paymentReceived,
		paymentMethod:   paymentMethod,
		documentKey:     documentKey,
		createdBy:       createdBy,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// WithOccupancy returns a copy with the derived status set. The receiver
// is never mutated; the resolver depends on that.
func (r *Room) WithOccupancy(occupied bool) *Room {
	clone := *r
	if occupied {
		clone.status = StatusOccupied
	} else {
		clone.status = StatusAvailable
	}
	return &clone
}

func (r *Room) IsOccupied() bool {
	return r.status == StatusOccupied
}

func (r *Room) IsVacant() bool {
	return r.status != StatusOccupied
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) RoomNumber() string    { return r.roomNumber }
func (r *Room) Type() string          { return r.roomType }
func (r *Room) PriceCents() int64     { return r.priceCents }
func (r *Room) CleaningDone() bool    { return r.cleaningDone }
func (r *Room) PaymentReceived() bool { return r.paymentReceived }
func (r *Room) PaymentMethod() string { return r.paymentMethod }
func (r *Room) DocumentKey() string   { return r.documentKey }
func (r *Room) CreatedBy() uuid.UUID  { return r.createdBy }
func (r *Room) Status() Status        { return r.status }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
