package cache_test

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/dropbox/godropbox/time2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/cache"
)

type payload struct {
	IDs []int64 `json:"ids"`
}

func testStore(t *testing.T, store cache.Store, expire func(d time.Duration)) {
	t.Helper()
	ctx := t.Context()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), 0))

	val, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	require.NoError(t, cache.SetJSON(ctx, store, "json", payload{IDs: []int64{1, 7}}, time.Minute))

	var p payload
	require.NoError(t, cache.GetJSON(ctx, store, "json", &p))
	assert.Equal(t, []int64{1, 7}, p.IDs)

	expire(2 * time.Minute)

	_, err = store.Get(ctx, "a")
	require.ErrorIs(t, err, cache.ErrMiss)

	val, err = store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)

	require.NoError(t, store.Delete(ctx, "b", "never-set"))
	_, err = store.Get(ctx, "b")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, store.Delete(ctx))
}

func TestMemoryStore(t *testing.T) {
	clock := time2.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	store := cache.NewMemoryStore(clock)

	testStore(t, store, clock.Advance)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := cache.NewRedisStore(client, "moonsters:")

	testStore(t, store, mr.FastForward)

	require.NoError(t, store.Set(t.Context(), "prefixed", []byte("x"), 0))
	assert.True(t, mr.Exists("moonsters:prefixed"))
}
