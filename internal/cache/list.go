package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"speaksmart/internal/worker"
)

// ListCache caches list endpoint results per table and category filter.
//
// Each table has a generation counter that is part of every key. Invalidate bumps it,
// so one INCR retires every filter variant at once, and a fill computed before the
// bump lands on a key nobody reads any more.
//
// A nil *ListCache is valid and caches nothing.
type ListCache struct {
	cache Cache
	ttl   time.Duration
	pool  worker.Pool
	log   zerolog.Logger
}

// NewListCache returns nil when ttl <= 0, which disables caching.
func NewListCache(c Cache, ttl time.Duration, pool worker.Pool, log zerolog.Logger) *ListCache {
	if ttl <= 0 {
		return nil
	}
	return &ListCache{cache: c, ttl: ttl, pool: pool, log: log.With().Str("component", "list_cache").Logger()}
}

func generationKey(table string) string {
	return "lista:" + table + ":gen"
}

// Key returns the current key for table and categoria.
func (l *ListCache) Key(ctx context.Context, table, categoria string) (string, error) {
	gen, err := l.cache.Get(ctx, generationKey(table)).Result()
	if errors.Is(err, redis.Nil) {
		gen = "0"
	} else if err != nil {
		return "", err
	}
	if categoria == "" {
		categoria = "*"
	}
	return fmt.Sprintf("lista:%s:g%s:%s", table, gen, categoria), nil
}

// Lookup decodes the cached list for table and categoria into dst. When it reports
// a miss it also returns the key a later Fill should use. Errors are logged and
// reported as a miss with no key so the caller falls back to the database.
func (l *ListCache) Lookup(ctx context.Context, table, categoria string, dst any) (hit bool, key string) {
	if l == nil {
		return false, ""
	}
	key, err := l.Key(ctx, table, categoria)
	if err != nil {
		l.log.Warn().Err(err).Str("table", table).Msg("list cache generation lookup failed")
		return false, ""
	}
	raw, err := l.cache.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, key
	}
	if err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("list cache read failed")
		return false, ""
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("list cache entry is corrupt")
		return false, key
	}
	return true, key
}

// Fill stores v under key on the worker pool, off the request path. The fill is
// skipped when the pool queue is full; the next miss tries again.
func (l *ListCache) Fill(key string, v any) {
	if l == nil || key == "" {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("list cache encode failed")
		return
	}
	l.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.cache.Set(ctx, key, raw, l.ttl).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("list cache fill failed")
		}
	})
}

// Invalidate retires every cached list of table. It runs inline so the
// next read after a create never sees the old list.
func (l *ListCache) Invalidate(ctx context.Context, table string) {
	if l == nil {
		return
	}
	if err := l.cache.Incr(ctx, generationKey(table)).Err(); err != nil {
		l.log.Error().Err(err).Str("table", table).Msg("list cache invalidation failed")
	}
}
