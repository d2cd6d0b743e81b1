//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"hotel-ops/internal/usecase/commands"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRoomViewCache_MissThenHit(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewRoomViewCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, []byte(`[{"roomNumber":"101"}]`)))

	payload, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"roomNumber":"101"}]`, string(payload))
}

func TestRoomViewCache_TTLExpiry(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewRoomViewCache(client, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []byte(`[]`)))
	mr.FastForward(time.Minute)

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoomViewCache_Invalidate(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewRoomViewCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, []byte(`[]`)))
	require.NoError(t, cache.Invalidate(ctx))

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisChangeNotifier_PublishReachesSubscriber(t *testing.T) {
	client, _ := newTestClient(t)
	notifier := NewRedisChangeNotifier(client)
	subscriber := NewSubscriber(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan commands.ChangeEvent, 1)
	go func() {
		_ = subscriber.Run(ctx, func(event commands.ChangeEvent) {
			received <- event
		})
	}()

	// Give the subscriber a moment to attach before publishing.
	time.Sleep(50 * time.Millisecond)

	want := commands.ChangeEvent{
		Collection: "bookings",
		ID:         uuid.New(),
		Op:         "create",
	}
	require.NoError(t, notifier.Publish(ctx, want))

	select {
	case got := <-received:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
