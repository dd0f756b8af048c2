package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/paulkisakye-beep/little-readers/pkg/metrics"
)

type entry[V any] struct {
	key       string
	val       V
	expiresAt time.Time
}

// LRUCacheTTL — in-memory LRU cache with per-entry TTL, used for the
// slow-changing backend lookups (delivery areas, promo validations).
// Thread-safe; a TTL of 0 disables expiry. Expiry is absolute from the
// last Set: reads refresh recency for eviction, never the TTL.
type LRUCacheTTL[V any] struct {
	name     string
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL[V any](name string, capacity int, ttl time.Duration) *LRUCacheTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
		return zero, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return ent.val, true
}

func (c *LRUCacheTTL[V]) Set(_ context.Context, key string, val V) error {
	if key == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.val = val
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		val:       val,
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *LRUCacheTTL[V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL[V]) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry[V])
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL[V]) isExpired(ent *entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *LRUCacheTTL[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (c *LRUCacheTTL[V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry[V])
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
			metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.index)))
			continue
		}
		return
	}
}
