package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/redis/go-redis/v9"
)

const (
	bucketKeyPrefix = "mfgdesk:bucket:"
	genKeyPrefix    = "mfgdesk:bucket-gen:"
)

// setIfGeneration stores ARGV[2] at KEYS[1] only while the counter at KEYS[2]
// still equals ARGV[1]. A missing counter reads as 0.
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// dropAndBump deletes the cached bucket and increments its generation
var dropAndBump = redis.NewScript(`
redis.call('DEL', KEYS[1])
return redis.call('INCR', KEYS[2])
`)

// RedisBucketCache stores each bucket as one JSON string key next to an
// integer generation key. Both keys share a hash tag so the scripts run on
// one cluster slot.
type RedisBucketCache struct {
	client redis.UniversalClient
}

// NewRedisBucketCache creates a bucket cache over client
func NewRedisBucketCache(client redis.UniversalClient) *RedisBucketCache {
	return &RedisBucketCache{client: client}
}

func (c *RedisBucketCache) key(bucket record.Bucket) string {
	return bucketKeyPrefix + "{" + bucket.String() + "}"
}

func (c *RedisBucketCache) genKey(bucket record.Bucket) string {
	return genKeyPrefix + "{" + bucket.String() + "}"
}

// Get returns the cached bucket
func (c *RedisBucketCache) Get(ctx context.Context, bucket record.Bucket) (map[string]*record.Record, bool, error) {
	raw, err := c.client.Get(ctx, c.key(bucket)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached bucket %s: %w", bucket, err)
	}

	recs, err := decodeBucket(bucket, raw)
	if err != nil {
		// A corrupt entry is a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return recs, true, nil
}

// Generation returns the bucket's invalidation counter
func (c *RedisBucketCache) Generation(ctx context.Context, bucket record.Bucket) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey(bucket)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read generation of bucket %s: %w", bucket, err)
	}
	return gen, nil
}

// Set caches the bucket for ttl unless its generation moved past gen
func (c *RedisBucketCache) Set(ctx context.Context, bucket record.Bucket, recs map[string]*record.Record, gen int64, ttl time.Duration) (bool, error) {
	raw, err := encodeBucket(recs)
	if err != nil {
		return false, fmt.Errorf("failed to encode bucket %s: %w", bucket, err)
	}
	keys := []string{c.key(bucket), c.genKey(bucket)}
	n, err := setIfGeneration.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), raw, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to cache bucket %s: %w", bucket, err)
	}
	return n == 1, nil
}

// Invalidate deletes the cached bucket and bumps its generation
func (c *RedisBucketCache) Invalidate(ctx context.Context, bucket record.Bucket) error {
	keys := []string{c.key(bucket), c.genKey(bucket)}
	if err := dropAndBump.Run(ctx, c.client, keys).Err(); err != nil {
		return fmt.Errorf("failed to invalidate bucket %s: %w", bucket, err)
	}
	return nil
}

var _ BucketCache = (*RedisBucketCache)(nil)
