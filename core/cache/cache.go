package cache

import (
	"sync"
	"time"
)

// Cache is a thread-safe in-process key-value store with TTL and tag invalidation.
type Cache struct {
	m        sync.Map
	tagIndex sync.Map // tag -> *sync.Map of keys
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

func NewCache() *Cache {
	return &Cache{}
}

type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // unix nanos, 0 means no expiration
}

// Set stores value under key. A zero ttl never expires.
func (c *Cache) Set(key, value interface{}, ttl time.Duration, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

func (c *Cache) Delete(key interface{}) {
	c.m.Delete(key)
}

// TagKey assigns tags to key.
func (c *Cache) TagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// GetKeysByTag returns the keys assigned to tag that are still cached.
func (c *Cache) GetKeysByTag(tag string) []interface{} {
	var keys []interface{}
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			if _, live := c.m.Load(key); live {
				keys = append(keys, key)
			}
			return true
		})
	}
	return keys
}

// DeleteByTag deletes every entry assigned to tag.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.LoadAndDelete(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			c.m.Delete(key)
			return true
		})
	}
}
