package room

import (
	"github.com/google/uuid"
)

// ActiveBookingRef is the slice of a booking the resolver needs. Keeping a
// local type avoids a dependency on the booking package.
type ActiveBookingRef struct {
	BookingID uuid.UUID
	RoomID    uuid.UUID
}

// DoubleBooking reports a room referenced by more than one active booking.
// The resolver does not repair the inconsistency, it only surfaces it.
type DoubleBooking struct {
	RoomID     uuid.UUID
	BookingIDs []uuid.UUID
}

type ResolveResult struct {
	Rooms         []*Room
	DoubleBooked  []DoubleBooking
	OccupiedCount int
}

// ResolveStatuses computes each room's occupancy from the active bookings
// that reference it. A room is occupied iff at least one active booking
// points at it; its stored flags are ignored for occupancy. The inputs are
// never mutated and resolving an already-resolved set yields the same
// output, so it is safe to re-run on every change notification.
func ResolveStatuses(rooms []*Room, active []ActiveBookingRef) ResolveResult {
	byRoom := make(map[uuid.UUID][]uuid.UUID, len(active))
	for _, ref := range active {
		byRoom[ref.RoomID] = append(byRoom[ref.RoomID], ref.BookingID)
	}

	result := ResolveResult{
		Rooms: make([]*Room, 0, len(rooms)),
	}

	for _, r := range rooms {
		bookings := byRoom[r.ID()]
		occupied := len(bookings) > 0
		if occupied {
			result.OccupiedCount++
		}
		if len(bookings) > 1 {
			result.DoubleBooked = append(result.DoubleBooked, DoubleBooking{
				RoomID:     r.ID(),
				BookingIDs: bookings,
			})
		}
		result.Rooms = append(result.Rooms, r.WithOccupancy(occupied))
	}

	return result
}
