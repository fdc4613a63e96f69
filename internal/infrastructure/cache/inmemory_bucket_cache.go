package cache

import (
	"context"
	"sync"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
)

type bucketEntry struct {
	recs      map[string]*record.Record
	expiresAt time.Time
}

// InMemoryBucketCache caches buckets in process
type InMemoryBucketCache struct {
	mu      sync.RWMutex
	entries map[record.Bucket]bucketEntry
	gens    map[record.Bucket]int64
	now     func() time.Time
	janitor *janitor
}

// NewInMemoryBucketCache creates a cache that sweeps expired buckets every minute
func NewInMemoryBucketCache() *InMemoryBucketCache {
	c := &InMemoryBucketCache{
		entries: make(map[record.Bucket]bucketEntry),
		gens:    make(map[record.Bucket]int64),
		now:     time.Now,
	}
	c.janitor = startJanitor(time.Minute, c.sweep)
	return c
}

// Get returns a copy of the cached bucket
func (c *InMemoryBucketCache) Get(_ context.Context, bucket record.Bucket) (map[string]*record.Record, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[bucket]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return cloneBucket(e.recs), true, nil
}

// Generation returns how many times bucket has been invalidated
func (c *InMemoryBucketCache) Generation(_ context.Context, bucket record.Bucket) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[bucket], nil
}

// Set stores a copy of recs unless bucket was invalidated after gen was read
func (c *InMemoryBucketCache) Set(_ context.Context, bucket record.Bucket, recs map[string]*record.Record, gen int64, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[bucket] != gen {
		return false, nil
	}
	c.entries[bucket] = bucketEntry{recs: cloneBucket(recs), expiresAt: c.now().Add(ttl)}
	return true, nil
}

// Invalidate drops the bucket and bumps its generation
func (c *InMemoryBucketCache) Invalidate(_ context.Context, bucket record.Bucket) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, bucket)
	c.gens[bucket]++
	return nil
}

// Len returns the number of cached buckets
func (c *InMemoryBucketCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the sweeper
func (c *InMemoryBucketCache) Close() error {
	c.janitor.stop()
	return nil
}

func (c *InMemoryBucketCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for b, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, b)
		}
	}
}

var _ BucketCache = (*InMemoryBucketCache)(nil)
