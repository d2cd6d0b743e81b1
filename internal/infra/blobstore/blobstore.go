// Package blobstore persists uploaded files (guest identity documents,
// food images). Keys are caller-chosen; the returned URL is the path the
// HTTP layer serves the blob under.
package blobstore

import (
	"context"
	"errors"

	"hotel-ops/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const urlPrefix = "/api/files/"

type PostgresBlobStore struct {
	pool *pgxpool.Pool
}

func NewPostgresBlobStore(pool *pgxpool.Pool) *PostgresBlobStore {
	return &PostgresBlobStore{pool: pool}
}

func (s *PostgresBlobStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", infra.WrapRepoErr("blob key must not be empty", nil, infra.KindBadDocument)
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO blobs (key, data, content_type) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, content_type = EXCLUDED.content_type`,
		key, data, contentType,
	)
	if err != nil {
		return "", infra.WrapRepoErr("failed to upload blob", err)
	}
	return urlPrefix + key, nil
}

func (s *PostgresBlobStore) Fetch(ctx context.Context, key string) ([]byte, string, error) {
	var (
		data        []byte
		contentType string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT data, content_type FROM blobs WHERE key = $1`, key,
	).Scan(&data, &contentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("blob not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to fetch blob", err)
	}
	return data, contentType, nil
}

func (s *PostgresBlobStore) Remove(ctx context.Context, key string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM blobs WHERE key = $1`, key)
	if err != nil {
		return infra.WrapRepoErr("failed to remove blob", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blob not found", nil, infra.KindNotFound)
	}
	return nil
}
