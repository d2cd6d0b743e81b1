// Package docstore is the record store adapter: schemaless documents in
// named collections with equality-filter queries. Two implementations
// exist, a Postgres jsonb store for production and an in-memory store for
// tests; repositories above it never know which one they talk to.
package docstore

import (
	"context"
	"encoding/json"

	"hotel-ops/internal/infra"

	"github.com/google/uuid"
)

// Persisted collection names.
const (
	CollectionRooms     = "rooms"
	CollectionBookings  = "bookings"
	CollectionTasks     = "cleaningTasks"
	CollectionCustomers = "customers"
	CollectionFoods     = "foods"
	CollectionUsers     = "users"
)

// Document holds JSON-typed field values (string, float64, bool, nil,
// nested map/slice). Encode normalizes arbitrary structs into this shape
// so both store implementations compare values identically.
type Document map[string]any

// Filter is an equality constraint on a top-level field.
type Filter struct {
	Field string
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

type Store interface {
	// Get returns the document or a NOT_FOUND repository error.
	Get(ctx context.Context, collection string, id uuid.UUID) (Document, error)
	// List returns every document matching all filters (AND semantics).
	List(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	// Create inserts a new document; an existing id is a DUPLICATE_KEY error.
	Create(ctx context.Context, collection string, id uuid.UUID, fields Document) error
	// Update merges patch into the stored fields. Absent keys are left alone.
	Update(ctx context.Context, collection string, id uuid.UUID, patch Document) error
	Delete(ctx context.Context, collection string, id uuid.UUID) error
}

// Encode marshals v through JSON into a Document.
func Encode(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode document", err, infra.KindBadDocument)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to normalize document", err, infra.KindBadDocument)
	}
	return doc, nil
}

// DecodeInto unmarshals a document into a typed snapshot.
func DecodeInto(doc Document, v any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal document", err, infra.KindBadDocument)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return infra.WrapRepoErr("failed to decode document", err, infra.KindBadDocument)
	}
	return nil
}

// normalizeValue rounds a filter value through JSON so it compares equal
// to Encode output regardless of the caller's concrete type.
func normalizeValue(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
