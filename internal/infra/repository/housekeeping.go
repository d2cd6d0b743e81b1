package repository

import (
	"context"

	"hotel-ops/internal/domain/housekeeping"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type TaskRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewTaskRepository(store docstore.Store, clock clock.Clock) *TaskRepository {
	return &TaskRepository{store: store, clock: clock}
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.TaskSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionTasks, id)
	if err != nil {
		return nil, err
	}
	var snap commands.TaskSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListOpenByRoom returns the room's tasks that are not yet completed.
// The store only filters equality, so the status exclusion happens here.
func (r *TaskRepository) ListOpenByRoom(ctx context.Context, roomID uuid.UUID) ([]commands.TaskSnapshot, error) {
	snaps, err := r.decodeList(r.store.List(ctx, docstore.CollectionTasks, docstore.Eq("roomId", roomID)))
	if err != nil {
		return nil, err
	}
	open := snaps[:0]
	for _, snap := range snaps {
		if snap.Status != housekeeping.StatusCompleted.String() {
			open = append(open, snap)
		}
	}
	return open, nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]commands.TaskSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionTasks))
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status string) ([]commands.TaskSnapshot, error) {
	return r.decodeList(r.store.List(ctx, docstore.CollectionTasks, docstore.Eq("status", status)))
}

func (r *TaskRepository) Create(ctx context.Context, snap commands.TaskSnapshot) error {
	snap.CreatedAt = r.clock.Now()

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionTasks, snap.ID, doc)
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, patch commands.TaskPatch) error {
	doc, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	doc["updatedAt"] = r.clock.Now()
	return r.store.Update(ctx, docstore.CollectionTasks, id, doc)
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, docstore.CollectionTasks, id)
}

func (r *TaskRepository) decodeList(docs []docstore.Document, err error) ([]commands.TaskSnapshot, error) {
	if err != nil {
		return nil, err
	}
	snaps := make([]commands.TaskSnapshot, 0, len(docs))
	for _, doc := range docs {
		var snap commands.TaskSnapshot
		if err := docstore.DecodeInto(doc, &snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
