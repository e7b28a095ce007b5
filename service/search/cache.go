package search

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"stockfilter.GO/config"
	"stockfilter.GO/core/cache"
	"stockfilter.GO/model/api/searchcriteria"
)

const (
	cacheKeyPrefix = "stockfilter:search:"
	cacheTag       = "product_search"
)

// ResultCache stores search results by criteria key.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Result, bool)
	Set(ctx context.Context, key string, r *Result, ttl time.Duration)
	Flush(ctx context.Context) error
}

// CacheKey derives a stable key from the store and the built criteria.
func CacheKey(storeID uint16, criteria *searchcriteria.SearchCriteria) string {
	data, _ := json.Marshal(criteria)
	sum := sha1.Sum(append([]byte(strconv.Itoa(int(storeID))+"|"), data...))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// NewResultCacheFromConfig uses Redis when config.RedisClient is set, the
// in-process cache otherwise.
func NewResultCacheFromConfig() ResultCache {
	if config.RedisClient != nil {
		return NewRedisResultCache(config.RedisClient)
	}
	return NewMemoryResultCache(cache.GetInstance())
}

type memoryResultCache struct {
	c *cache.Cache
}

func NewMemoryResultCache(c *cache.Cache) ResultCache {
	return &memoryResultCache{c: c}
}

func (m *memoryResultCache) Get(_ context.Context, key string) (*Result, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	r, ok := v.(*Result)
	return r, ok
}

func (m *memoryResultCache) Set(_ context.Context, key string, r *Result, ttl time.Duration) {
	m.c.Set(key, r, ttl, []string{cacheTag})
}

func (m *memoryResultCache) Flush(context.Context) error {
	m.c.DeleteByTag(cacheTag)
	return nil
}

type redisResultCache struct {
	rdb *redis.Client
}

func NewRedisResultCache(rdb *redis.Client) ResultCache {
	return &redisResultCache{rdb: rdb}
}

func (c *redisResultCache) Get(ctx context.Context, key string) (*Result, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *redisResultCache) Set(ctx context.Context, key string, r *Result, ttl time.Duration) {
	data, err := json.Marshal(r)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, ttl)
}

func (c *redisResultCache) Flush(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, cacheKeyPrefix+"*", 500).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
