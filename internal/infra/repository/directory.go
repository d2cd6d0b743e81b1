package repository

import (
	"context"

	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
)

// Customers and food items are pure CRUD records; their repositories
// share one file.

type CustomerRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewCustomerRepository(store docstore.Store, clock clock.Clock) *CustomerRepository {
	return &CustomerRepository{store: store, clock: clock}
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionCustomers, id)
	if err != nil {
		return nil, err
	}
	var snap commands.CustomerSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *CustomerRepository) ListAll(ctx context.Context) ([]commands.CustomerSnapshot, error) {
	docs, err := r.store.List(ctx, docstore.CollectionCustomers)
	if err != nil {
		return nil, err
	}
	snaps := make([]commands.CustomerSnapshot, 0, len(docs))
	for _, doc := range docs {
		var snap commands.CustomerSnapshot
		if err := docstore.DecodeInto(doc, &snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func (r *CustomerRepository) Create(ctx context.Context, snap commands.CustomerSnapshot) error {
	now := r.clock.Now()
	snap.CreatedAt = now
	snap.UpdatedAt = now

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionCustomers, snap.ID, doc)
}

func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, patch commands.CustomerPatch) error {
	doc, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	doc["updatedAt"] = r.clock.Now()
	return r.store.Update(ctx, docstore.CollectionCustomers, id, doc)
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, docstore.CollectionCustomers, id)
}

type FoodRepository struct {
	store docstore.Store
	clock clock.Clock
}

func NewFoodRepository(store docstore.Store, clock clock.Clock) *FoodRepository {
	return &FoodRepository{store: store, clock: clock}
}

func (r *FoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.FoodSnapshot, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionFoods, id)
	if err != nil {
		return nil, err
	}
	var snap commands.FoodSnapshot
	if err := docstore.DecodeInto(doc, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *FoodRepository) ListAll(ctx context.Context) ([]commands.FoodSnapshot, error) {
	docs, err := r.store.List(ctx, docstore.CollectionFoods)
	if err != nil {
		return nil, err
	}
	snaps := make([]commands.FoodSnapshot, 0, len(docs))
	for _, doc := range docs {
		var snap commands.FoodSnapshot
		if err := docstore.DecodeInto(doc, &snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func (r *FoodRepository) Create(ctx context.Context, snap commands.FoodSnapshot) error {
	now := r.clock.Now()
	snap.CreatedAt = now
	snap.UpdatedAt = now

	doc, err := docstore.Encode(snap)
	if err != nil {
		return err
	}
	return r.store.Create(ctx, docstore.CollectionFoods, snap.ID, doc)
}

func (r *FoodRepository) Update(ctx context.Context, id uuid.UUID, patch commands.FoodPatch) error {
	doc, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	doc["updatedAt"] = r.clock.Now()
	return r.store.Update(ctx, docstore.CollectionFoods, id, doc)
}

func (r *FoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, docstore.CollectionFoods, id)
}
