package cache

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"speaksmart/internal/worker"
)

// inlinePool runs tasks on the caller's goroutine.
type inlinePool struct{}

func (inlinePool) Submit(t worker.Task) { t() }
func (inlinePool) Stop()                {}

func newTestListCache(t *testing.T) (*ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListCache(client, time.Minute, inlinePool{}, zerolog.Nop()), mr
}

type item struct {
	ID string `json:"id"`
}

func TestNewListCacheDisabled(t *testing.T) {
	lc := NewListCache(&FakeCache{}, 0, inlinePool{}, zerolog.Nop())
	require.Nil(t, lc)

	var out []item
	hit, key := lc.Lookup(context.Background(), "lezioni", "", &out)
	require.False(t, hit)
	require.Empty(t, key)
	require.NotPanics(t, func() {
		lc.Fill("k", out)
		lc.Invalidate(context.Background(), "lezioni")
	})
}

func TestListCacheKey(t *testing.T) {
	lc, _ := newTestListCache(t)
	ctx := context.Background()

	key, err := lc.Key(ctx, "lezioni", "")
	require.NoError(t, err)
	require.Equal(t, "lista:lezioni:g0:*", key)

	key, err = lc.Key(ctx, "lezioni", "grammatica")
	require.NoError(t, err)
	require.Equal(t, "lista:lezioni:g0:grammatica", key)

	lc.Invalidate(ctx, "lezioni")
	key, err = lc.Key(ctx, "lezioni", "grammatica")
	require.NoError(t, err)
	require.Equal(t, "lista:lezioni:g1:grammatica", key)

	key, err = lc.Key(ctx, "richieste", "")
	require.NoError(t, err)
	require.Equal(t, "lista:richieste:g0:*", key)
}

func TestListCacheRoundTrip(t *testing.T) {
	lc, mr := newTestListCache(t)
	ctx := context.Background()

	var out []item
	hit, key := lc.Lookup(ctx, "lezioni", "lessico", &out)
	require.False(t, hit)
	require.Equal(t, "lista:lezioni:g0:lessico", key)

	lc.Fill(key, []item{{ID: "a"}, {ID: "b"}})
	require.True(t, mr.Exists(key))
	require.Equal(t, time.Minute, mr.TTL(key))

	hit, _ = lc.Lookup(ctx, "lezioni", "lessico", &out)
	require.True(t, hit)
	require.Equal(t, []item{{ID: "a"}, {ID: "b"}}, out)

	lc.Invalidate(ctx, "lezioni")
	out = nil
	hit, key = lc.Lookup(ctx, "lezioni", "lessico", &out)
	require.False(t, hit)
	require.Equal(t, "lista:lezioni:g1:lessico", key)
	require.Nil(t, out)
}

func TestListCacheStaleFillIsUnreachable(t *testing.T) {
	lc, _ := newTestListCache(t)
	ctx := context.Background()

	var out []item
	_, staleKey := lc.Lookup(ctx, "richieste", "", &out)
	lc.Invalidate(ctx, "richieste")
	lc.Fill(staleKey, []item{{ID: "old"}})

	hit, _ := lc.Lookup(ctx, "richieste", "", &out)
	require.False(t, hit)
}

func TestListCacheCorruptEntry(t *testing.T) {
	lc, mr := newTestListCache(t)
	require.NoError(t, mr.Set("lista:lezioni:g0:*", "{not json"))

	var out []item
	hit, key := lc.Lookup(context.Background(), "lezioni", "", &out)
	require.False(t, hit)
	require.Equal(t, "lista:lezioni:g0:*", key)
}

func TestListCacheBackendDown(t *testing.T) {
	var buf bytes.Buffer
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	lc := NewListCache(client, time.Minute, inlinePool{}, zerolog.New(&buf))
	mr.Close()

	var out []item
	ctx := context.Background()
	hit, key := lc.Lookup(ctx, "lezioni", "", &out)
	require.False(t, hit)
	require.Empty(t, key)

	lc.Fill("lista:lezioni:g0:*", []item{})
	lc.Invalidate(ctx, "lezioni")

	logs := buf.String()
	require.Contains(t, logs, "generation lookup failed")
	require.Contains(t, logs, "fill failed")
	require.Contains(t, logs, "invalidation failed")
}
