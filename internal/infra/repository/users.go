package repository

import (
	"context"
	"time"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewUserRepository(store docstore.Store, clock clock.Clock) *UserRepository {
	return &UserRepository{store: store, clock: clock}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionUsers, id)
	if err != nil {
		return nil, err
	}
	var snap commands.UserSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	docs, err := r.store.List(ctx, docstore.CollectionUsers, docstore.Eq("email", email))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	var snap commands.UserSnapshot
	if err := docstore.DecodeInto(docs[0], &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *UserRepository) Create(ctx context.Context, snap commands.UserSnapshot) error {
	now := r.clock.Now()
	snap.CreatedAt = now
	snap.UpdatedAt = now

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionUsers, snap.ID, doc)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.store.Update(ctx, docstore.CollectionUsers, id, docstore.Document{
		"lastLogin": at,
		"updatedAt": r.clock.Now(),
	})
}
