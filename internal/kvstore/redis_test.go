package kvstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client, "velora")

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, mr.Set("velora:velora-cart-items", `[{"id":1,"qty":2}]`))

	v, err := store.Get(ctx, "velora-cart-items")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"qty":2}]`, v)
}

func TestRedisGet_Missing(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := store.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSet_RoundTrip(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	err := store.Set(ctx, "velora-order-history", "[]")
	require.NoError(t, err)

	stored, err := mr.Get("velora:velora-order-history")
	require.NoError(t, err)
	assert.Equal(t, "[]", stored)

	v, err := store.Get(ctx, "velora-order-history")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestRedisRemove_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, mr.Set("velora:velora-cart-items", "[]"))

	err := store.Remove(ctx, "velora-cart-items")
	require.NoError(t, err)
	assert.False(t, mr.Exists("velora:velora-cart-items"))
}

func TestRedisRemove_NonExistentKey(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	err := store.Remove(context.Background(), "nonexistent")
	assert.NoError(t, err)
}

func TestRedisStoreKey_NoPrefix(t *testing.T) {
	store := &RedisStore{prefix: ""}
	assert.Equal(t, "velora-cart-items", store.storeKey("velora-cart-items"))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "velora-cart-items")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "velora-cart-items", "[]"))
	v, err := store.Get(ctx, "velora-cart-items")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, store.Remove(ctx, "velora-cart-items"))
	_, err = store.Get(ctx, "velora-cart-items")
	assert.ErrorIs(t, err, ErrNotFound)
}
