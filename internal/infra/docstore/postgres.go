package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"hotel-ops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresStore keeps every collection in a single documents table keyed
// by (collection, id) with the fields as jsonb. Equality filters compile
// to a jsonb containment match so they use types, not text comparison.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, collection string, id uuid.UUID) (Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT fields FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("document not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get document", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.WrapRepoErr("corrupt document fields", err, infra.KindBadDocument)
	}
	return doc, nil
}

func (s *PostgresStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	query := `SELECT id, fields FROM documents WHERE collection = $1`
	args := []any{collection}

	if len(filters) > 0 {
		match := make(map[string]any, len(filters))
		for _, f := range filters {
			match[f.Field] = normalizeValue(f.Value)
		}
		containment, err := json.Marshal(match)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to build filter", err, infra.KindBadDocument)
		}
		query += ` AND fields @> $2::jsonb`
		args = append(args, containment)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list documents", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id  uuid.UUID
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan document row", err)
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, infra.WrapRepoErr("corrupt document fields", err, infra.KindBadDocument)
		}
		doc["id"] = id.String()
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate documents", err)
	}
	return docs, nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, id uuid.UUID, fields Document) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal document", err, infra.KindBadDocument)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3)`,
		collection, id, raw,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return infra.WrapRepoErr("document already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create document", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, collection string, id uuid.UUID, patch Document) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal patch", err, infra.KindBadDocument)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET fields = fields || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collection, id, raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update document", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete document", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("document not found", nil, infra.KindNotFound)
	}
	return nil
}
