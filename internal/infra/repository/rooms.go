package repository

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type RoomRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewRoomRepository(store docstore.Store, clock clock.Clock) *RoomRepository {
	return &RoomRepository{store: store, clock: clock}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionRooms, id)
	if err != nil {
		return nil, err
	}
	var snap commands.RoomSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *RoomRepository) FindByOwnerAndNumber(ctx context.Context, owner uuid.UUID, roomNumber string) (*commands.RoomSnapshot, error) {
	docs, err := r.store.List(ctx, docstore.CollectionRooms,
		docstore.Eq("createdBy", owner),
		docstore.Eq("roomNumber", roomNumber),
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	var snap commands.RoomSnapshot
	if err := docstore.DecodeInto(docs[0], &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *RoomRepository) ListAll(ctx context.Context) ([]commands.RoomSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionRooms))
}

func (r *RoomRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]commands.RoomSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionRooms, docstore.Eq("createdBy", owner)))
}

func (r *RoomRepository) Create(ctx context.Context, snap commands.RoomSnapshot) error {
	now := r.clock.Now()
	snap.CreatedAt = now
	snap.UpdatedAt = now

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionRooms, snap.ID, doc)
}

func (r *RoomRepository) Update(ctx context.Context, id uuid.UUID, patch commands.RoomPatch) error {
	doc, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	doc["updatedAt"] = r.clock.Now()
	return r.store.Update(ctx, docstore.CollectionRooms, id, doc)
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, docstore.CollectionRooms, id)
}

func (r *RoomRepository) decodeList(docs []docstore.Document, err error) ([]commands.RoomSnapshot, error) {
	if err != nil {
		return nil, err
	}
	snaps := make([]commands.RoomSnapshot, 0, len(docs))
	for _, doc := range docs {
		var snap commands.RoomSnapshot
		if err := docstore.DecodeInto(doc, &snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
