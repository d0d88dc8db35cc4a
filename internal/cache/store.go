package cache

import (
	"context"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"coindash-api/pkg/market"
)

// Store is the series cache boundary injected into the fetcher. Beyond
// market.SeriesCache it supports the dashboard's Refresh and Clear All
// controls.
type Store interface {
	market.SeriesCache
	Invalidate(ctx context.Context, symbol string, interval market.Interval)
	InvalidateAll(ctx context.Context)
}

// MemoryStore caches fetch results in-process. It backs single-node
// deployments and tests.
type MemoryStore struct {
	mu    sync.Mutex
	cache *collection.Cache
	ttl   TTLSet
}

// NewMemoryStore builds an in-process store with the configured TTLs.
func NewMemoryStore(ttl TTLSet) (*MemoryStore, error) {
	c, err := collection.NewCache(SeriesTTL(ttl))
	if err != nil {
		return nil, err
	}
	return &MemoryStore{cache: c, ttl: ttl}, nil
}

func (s *MemoryStore) Get(_ context.Context, symbol string, interval market.Interval) (market.FetchResult, bool) {
	s.mu.Lock()
	c := s.cache
	s.mu.Unlock()

	raw, ok := c.Get(SeriesKey(symbol, interval))
	if !ok {
		return market.FetchResult{}, false
	}
	result, ok := raw.(market.FetchResult)
	return result, ok
}

func (s *MemoryStore) Set(_ context.Context, symbol string, interval market.Interval, result market.FetchResult) {
	s.mu.Lock()
	c := s.cache
	s.mu.Unlock()
	c.Set(SeriesKey(symbol, interval), result)
}

func (s *MemoryStore) Invalidate(_ context.Context, symbol string, interval market.Interval) {
	s.mu.Lock()
	c := s.cache
	s.mu.Unlock()
	c.Del(SeriesKey(symbol, interval))
}

// InvalidateAll swaps in a fresh cache instance; collection.Cache has
// no bulk clear.
func (s *MemoryStore) InvalidateAll(_ context.Context) {
	c, err := collection.NewCache(SeriesTTL(s.ttl))
	if err != nil {
		logx.Errorf("cache: rebuild memory cache: %v", err)
		return
	}
	s.mu.Lock()
	s.cache = c
	s.mu.Unlock()
}

// RedisStore caches msgpack-encoded fetch results in redis so multiple
// API nodes share the same five-minute window.
type RedisStore struct {
	client *redis.Redis
	ttl    TTLSet
}

// NewRedisStore builds a redis-backed store.
func NewRedisStore(client *redis.Redis, ttl TTLSet) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, symbol string, interval market.Interval) (market.FetchResult, bool) {
	payload, err := s.client.GetCtx(ctx, SeriesKey(symbol, interval))
	if err != nil || payload == "" {
		if err != nil {
			logx.WithContext(ctx).Errorf("cache: redis get %s/%s: %v", symbol, interval, err)
		}
		return market.FetchResult{}, false
	}
	var result market.FetchResult
	if err := msgpack.Unmarshal([]byte(payload), &result); err != nil {
		logx.WithContext(ctx).Errorf("cache: decode cached series %s/%s: %v", symbol, interval, err)
		return market.FetchResult{}, false
	}
	return result, true
}

func (s *RedisStore) Set(ctx context.Context, symbol string, interval market.Interval, result market.FetchResult) {
	payload, err := msgpack.Marshal(result)
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: encode series %s/%s: %v", symbol, interval, err)
		return
	}
	seconds := int(SeriesTTL(s.ttl).Seconds())
	if err := s.client.SetexCtx(ctx, SeriesKey(symbol, interval), string(payload), seconds); err != nil {
		logx.WithContext(ctx).Errorf("cache: redis set %s/%s: %v", symbol, interval, err)
	}
}

func (s *RedisStore) Invalidate(ctx context.Context, symbol string, interval market.Interval) {
	if _, err := s.client.DelCtx(ctx, SeriesKey(symbol, interval)); err != nil {
		logx.WithContext(ctx).Errorf("cache: redis del %s/%s: %v", symbol, interval, err)
	}
}

func (s *RedisStore) InvalidateAll(ctx context.Context) {
	keys, err := s.client.KeysCtx(ctx, SeriesKeyPattern())
	if err != nil {
		logx.WithContext(ctx).Errorf("cache: redis keys scan: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if _, err := s.client.DelCtx(ctx, keys...); err != nil {
		logx.WithContext(ctx).Errorf("cache: redis bulk del: %v", err)
	}
}
