package blobstore

import (
	"context"
	"sync"

	"hotel-ops/internal/infra"
)

type memoryBlob struct {
	data        []byte
	contentType string
}

// MemoryBlobStore is the in-memory counterpart used by unit tests.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]memoryBlob)}
}

func (s *MemoryBlobStore) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", infra.WrapRepoErr("blob key must not be empty", nil, infra.KindBadDocument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[key] = memoryBlob{data: cp, contentType: contentType}
	return urlPrefix + key, nil
}

func (s *MemoryBlobStore) Fetch(_ context.Context, key string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, "", infra.WrapRepoErr("blob not found", nil, infra.KindNotFound)
	}
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp, b.contentType, nil
}

func (s *MemoryBlobStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; !ok {
		return infra.WrapRepoErr("blob not found", nil, infra.KindNotFound)
	}
	delete(s.blobs, key)
	return nil
}
