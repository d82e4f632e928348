package clientstate

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping integration test: REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: redis unreachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewRedisStorage(client, time.Hour)
}

func TestRedisStorageRoundTrip(t *testing.T) {
	storage := redisStorage(t)
	ctx := context.Background()
	key := fmt.Sprintf("clientstate-test-%s", uuid.New().String()[:8])
	defer storage.Delete(ctx, key)

	_, err := storage.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, storage.Set(ctx, key, []byte(`{"v":1}`)))
	val, err := storage.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(val))

	// Deleting an absent key is not an error.
	require.NoError(t, storage.Delete(ctx, key))
	require.NoError(t, storage.Delete(ctx, key))
	_, err = storage.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorageBacksNamespacedStore(t *testing.T) {
	storage := redisStorage(t)
	ctx := context.Background()

	email := fmt.Sprintf("redis-%s@example.com", uuid.New().String()[:8])
	store := NewNamespacedStore(storage, CoachStatePrefix,
		func() string { return NamespaceFor(email) },
		NewCoachState,
	)
	defer storage.Delete(ctx, store.Key())

	state := store.Load(ctx).Append(RoleUserMessage, "what goes on the board?")
	store.Save(ctx, state)

	restored := store.Load(ctx)
	require.Len(t, restored.Messages, 2)
	assert.Equal(t, "what goes on the board?", restored.Messages[1].Content)
}
