//go:build unit || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotel-ops/internal/infra/docstore"
	"hotel-ops/internal/pkg/clock"
	"hotel-ops/internal/pkg/password"
	"hotel-ops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestUserPassword is the plaintext every seeded account logs in with.
const TestUserPassword = "password123"

var (
	hashOnce   sync.Once
	cachedHash string
)

// testPasswordHash computes the bcrypt hash once per process; bcrypt is
// slow enough that per-user hashing would dominate suite setup.
func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := password.HashPassword(TestUserPassword)
		require.NoError(t, err)
		cachedHash = hash
	})
	return cachedHash
}

// CreateTestUser inserts an active user document and returns its id. If a
// user with the email already exists, the existing id is returned.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	store := docstore.NewPostgresStore(pool)

	existing, err := store.List(ctx, docstore.CollectionUsers, docstore.Eq("email", email))
	require.NoError(t, err)
	if len(existing) > 0 {
		var snap commands.UserSnapshot
		require.NoError(t, docstore.DecodeInto(existing[0], &snap))
		return snap.ID
	}

	now := clock.NewRealClock().Now()
	snap := commands.UserSnapshot{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: testPasswordHash(t),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	doc, err := docstore.Encode(snap)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, docstore.CollectionUsers, snap.ID, doc))

	return snap.ID
}

// ResetDB truncates all application tables. The schema is fixed, so a
// static statement is enough.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE documents, blobs RESTART IDENTITY CASCADE")
	return err
}
