package repository

import (
	"context"

	"hotel-ops/internal/domain/booking"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewBookingRepository(store docstore.Store, clock clock.Clock) *BookingRepository {
	return &BookingRepository{store: store, clock: clock}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionBookings, id)
	if err != nil {
		return nil, err
	}
	var snap commands.BookingSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *BookingRepository) ListActive(ctx context.Context) ([]commands.BookingSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionBookings,
		docstore.Eq("status", booking.StatusActive.String()),
	))
}

func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]commands.BookingSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionBookings,
		docstore.Eq("status", booking.StatusActive.String()),
		docstore.Eq("roomId", roomID),
	))
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]commands.BookingSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionBookings))
}

func (r *BookingRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]commands.BookingSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionBookings, docstore.Eq("createdBy", owner)))
}

func (r *BookingRepository) Create(ctx context.Context, snap commands.BookingSnapshot) error {
	now := r.clock.Now()
	snap.CreatedAt = now
	snap.UpdatedAt = now

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionBookings, snap.ID, doc)
}

func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, patch commands.BookingPatch) error {
	doc, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	doc["updatedAt"] = r.clock.Now()
	return r.store.Update(ctx, docstore.CollectionBookings, id, doc)
}

func (r *BookingRepository) decodeList(docs []docstore.Document, err error) ([]commands.BookingSnapshot, error) {
	if err != nil {
		return nil, err
	}
	snaps := make([]commands.BookingSnapshot, 0, len(docs))
	for _, doc := range docs {
		var snap commands.BookingSnapshot
		if err := docstore.DecodeInto(doc, &snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
