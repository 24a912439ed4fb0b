package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/pkg/ratelimit"
)

func newRedisStore(t *testing.T) (*ratelimit.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := ratelimit.NewRedisStore(client)
	require.NoError(t, err)
	return store, mr
}

func TestNewRedisStore(t *testing.T) {
	t.Run("rejects nil client", func(t *testing.T) {
		_, err := ratelimit.NewRedisStore(nil)
		assert.ErrorIs(t, err, ratelimit.ErrStoreRequired)
	})
}

func TestRedisStoreRecordIfAllowed(t *testing.T) {
	ctx := context.Background()

	t.Run("records until the limit is reached", func(t *testing.T) {
		store, _ := newRedisStore(t)

		now := time.Now()
		for i := range 3 {
			allowed, count, err := store.RecordIfAllowed(ctx, "k", now, time.Minute, 3, 1)
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Equal(t, int64(i+1), count)
		}

		allowed, count, err := store.RecordIfAllowed(ctx, "k", now, time.Minute, 3, 1)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, int64(3), count)
	})

	t.Run("prunes entries outside the window", func(t *testing.T) {
		store, _ := newRedisStore(t)

		old := time.Now().Add(-2 * time.Minute)
		allowed, _, err := store.RecordIfAllowed(ctx, "k", old, time.Minute, 1, 1)
		require.NoError(t, err)
		require.True(t, allowed)

		// The old entry falls outside the current window, so the slot is free.
		allowed, count, err := store.RecordIfAllowed(ctx, "k", time.Now(), time.Minute, 1, 1)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects oversized batches whole", func(t *testing.T) {
		store, _ := newRedisStore(t)

		now := time.Now()
		allowed, count, err := store.RecordIfAllowed(ctx, "k", now, time.Minute, 3, 2)
		require.NoError(t, err)
		require.True(t, allowed)
		require.Equal(t, int64(2), count)

		allowed, count, err = store.RecordIfAllowed(ctx, "k", now, time.Minute, 3, 2)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, int64(2), count)
	})

	t.Run("sets a TTL on the key", func(t *testing.T) {
		store, mr := newRedisStore(t)

		_, _, err := store.RecordIfAllowed(ctx, "k", time.Now(), time.Minute, 5, 1)
		require.NoError(t, err)

		ttl := mr.TTL("ratelimit:k")
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, time.Minute)
	})
}

func TestRedisStoreCountInWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("counts only in-window entries", func(t *testing.T) {
		store, _ := newRedisStore(t)

		old := time.Now().Add(-2 * time.Minute)
		_, _, err := store.RecordIfAllowed(ctx, "k", old, 5*time.Minute, 10, 1)
		require.NoError(t, err)
		_, _, err = store.RecordIfAllowed(ctx, "k", time.Now(), 5*time.Minute, 10, 1)
		require.NoError(t, err)

		count, err := store.CountInWindow(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("returns zero for unknown keys", func(t *testing.T) {
		store, _ := newRedisStore(t)

		count, err := store.CountInWindow(ctx, "missing", time.Minute)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRedisStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("clears all state for the key", func(t *testing.T) {
		store, _ := newRedisStore(t)

		_, _, err := store.RecordIfAllowed(ctx, "k", time.Now(), time.Minute, 1, 1)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, "k"))

		allowed, _, err := store.RecordIfAllowed(ctx, "k", time.Now(), time.Minute, 1, 1)
		require.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestSlidingWindowOverRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("enforces the limit end to end", func(t *testing.T) {
		store, _ := newRedisStore(t)
		limiter, err := ratelimit.NewSlidingWindow(store, 2, time.Minute)
		require.NoError(t, err)

		res, err := limiter.Allow(ctx, "ip-1")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 1, res.Remaining)

		res, err = limiter.Allow(ctx, "ip-1")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)

		res, err = limiter.Allow(ctx, "ip-1")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})
}
