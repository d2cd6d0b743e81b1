package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"hotel-ops/internal/domain/room"
	"hotel-ops/internal/domain/user"
	"hotel-ops/internal/infra"
	"hotel-ops/internal/pkg/errs"
	"hotel-ops/internal/pkg/metrics"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errs.New("room not found")
	ErrReadFailed   = errs.New("read store operation failed")
)

type RoomReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error)
	ListAll(ctx context.Context) ([]commands.RoomSnapshot, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]commands.RoomSnapshot, error)
}

type ActiveBookingReadRepo interface {
	ListActive(ctx context.Context) ([]commands.BookingSnapshot, error)
}

// ViewCache holds the serialized resolved room listing. Only the
// all-records listing is cached; owner-scoped listings are cheap enough
// to resolve per request.
type ViewCache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

// NopViewCache disables caching.
type NopViewCache struct{}

func (NopViewCache) Get(context.Context) ([]byte, bool, error) { return nil, false, nil }
func (NopViewCache) Set(context.Context, []byte) error         { return nil }
func (NopViewCache) Invalidate(context.Context) error          { return nil }

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// List returns every room with its occupancy derived from the active
	// bookings. Stored status flags are recomputed on every read, so a
	// stale flag never reaches a caller.
	List(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms    RoomReadRepo
	bookings ActiveBookingReadRepo
	cache    ViewCache
}

func NewRoomQueries(rooms RoomReadRepo, bookings ActiveBookingReadRepo, cache ViewCache) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, bookings: bookings, cache: cache}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	snap, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}

	active, err := q.bookings.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := q.resolve([]commands.RoomSnapshot{*snap}, active)
	return views[0], nil
}

func (q *roomQueriesImpl) List(ctx context.Context, actorID uuid.UUID, role user.Role) ([]*RoomView, error) {
	seesAll := role.SeesAllRecords()
	if seesAll {
		if payload, ok, err := q.cache.Get(ctx); err == nil && ok {
			var views []*RoomView
			if err := json.Unmarshal(payload, &views); err == nil {
				return views, nil
			}
			// Corrupt cache entry: fall through to a fresh resolve.
			if err := q.cache.Invalidate(ctx); err != nil {
				slog.Warn("failed to invalidate corrupt room view cache", "error", err)
			}
		} else if err != nil {
			slog.Warn("room view cache read failed", "error", err)
		}
	}

	var (
		snaps []commands.RoomSnapshot
		err   error
	)
	if seesAll {
		snaps, err = q.rooms.ListAll(ctx)
	} else {
		snaps, err = q.rooms.ListByOwner(ctx, actorID)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	active, err := q.bookings.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}

	views := q.resolve(snaps, active)

	if seesAll {
		if payload, err := json.Marshal(views); err == nil {
			if err := q.cache.Set(ctx, payload); err != nil {
				slog.Warn("failed to populate room view cache", "error", err)
			}
		}
	}

	return views, nil
}

func (q *roomQueriesImpl) resolve(snaps []commands.RoomSnapshot, active []commands.BookingSnapshot) []*RoomView {
	rooms := make([]*room.Room, 0, len(snaps))
	for i := range snaps {
		rooms = append(rooms, roomFromSnapshot(&snaps[i]))
	}

	refs := make([]room.ActiveBookingRef, 0, len(active))
	for _, b := range active {
		refs = append(refs, room.ActiveBookingRef{BookingID: b.ID, RoomID: b.RoomID})
	}

	result := room.ResolveStatuses(rooms, refs)
	for _, db := range result.DoubleBooked {
		slog.Warn("room referenced by multiple active bookings",
			"room_id", db.RoomID, "booking_ids", db.BookingIDs)
	}
	if n := len(result.DoubleBooked); n > 0 {
		metrics.AddDoubleBookings(n)
	}

	views := make([]*RoomView, 0, len(result.Rooms))
	for _, r := range result.Rooms {
		views = append(views, roomToView(r))
	}
	return views
}

func roomFromSnapshot(s *commands.RoomSnapshot) *room.Room {
	return room.Reconstruct(
		s.ID,
		s.RoomNumber,
		s.Type,
		s.Price,
		s.CleaningDone,
		s.PaymentReceived,
		s.PaymentMethod,
		s.DocumentKey,
		s.CreatedBy,
		room.Status(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
	)
}

func roomToView(r *room.Room) *RoomView {
	return &RoomView{
		ID:              r.ID(),
		RoomNumber:      r.RoomNumber(),
		Type:            r.Type(),
		Price:           r.PriceCents(),
		CleaningDone:    r.CleaningDone(),
		PaymentReceived: r.PaymentReceived(),
		PaymentMethod:   r.PaymentMethod(),
		Status:          r.Status().String(),
		IsVacant:        r.IsVacant(),
		CreatedBy:       r.CreatedBy(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}
