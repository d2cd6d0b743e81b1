package docstore

import (
	"context"
	"reflect"
	"sync"

	"hotel-ops/internal/infra"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store used by unit tests. Same contract as
// the Postgres store, including patch-merge update semantics.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[uuid.UUID]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[uuid.UUID]Document),
	}
}

func (s *MemoryStore) Get(_ context.Context, collection string, id uuid.UUID) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	return cloneDocument(doc), nil
}

func (s *MemoryStore) List(_ context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.collections[collection] {
		if matches(doc, filters) {
			docs = append(docs, cloneDocument(doc))
		}
	}
	return docs, nil
}

func (s *MemoryStore) Create(_ context.Context, collection string, id uuid.UUID, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[uuid.UUID]Document)
		s.collections[collection] = coll
	}
	if _, exists := coll[id]; exists {
		return infra.WrapRepoErr("document already exists", nil, infra.KindDuplicateKey)
	}
	coll[id] = cloneDocument(fields)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection string, id uuid.UUID, patch Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	for k, v := range cloneDocument(patch) {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	delete(s.collections[collection], id)
	return nil
}

func matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(doc[f.Field], normalizeValue(f.Value)) {
			return false
		}
	}
	return true
}

func cloneDocument(doc Document) Document {
	clone, err := Encode(doc)
	if err != nil {
		// Documents come from Encode in the first place, so this only
		// happens on values json cannot represent.
		panic(err)
	}
	return clone
}
