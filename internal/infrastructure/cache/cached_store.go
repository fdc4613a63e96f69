package cache

import (
	"context"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CachedStore is a read-through record.Store decorator. Whole buckets are
// cached; every write or delete invalidates the bucket holding the record
// before returning, so reads that follow a write observe it.
type CachedStore struct {
	inner   record.Store
	cache   BucketCache
	ttl     time.Duration
	observe func(bucket record.Bucket, hit bool)
}

// CachedStoreOption configures a CachedStore
type CachedStoreOption func(*CachedStore)

// WithLookupObserver is called after every bucket lookup with whether it hit
func WithLookupObserver(fn func(bucket record.Bucket, hit bool)) CachedStoreOption {
	return func(s *CachedStore) {
		s.observe = fn
	}
}

// NewCachedStore wraps inner with cache; buckets live for ttl
func NewCachedStore(inner record.Store, cache BucketCache, ttl time.Duration, opts ...CachedStoreOption) *CachedStore {
	s := &CachedStore{inner: inner, cache: cache, ttl: ttl, observe: func(record.Bucket, bool) {}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetBucket serves the bucket from cache, loading and caching it on a miss.
// Cache failures fall back to the inner store. A context marked with
// record.Fresh skips the cache.
func (s *CachedStore) GetBucket(ctx context.Context, bucket record.Bucket) (map[string]*record.Record, error) {
	if record.IsFresh(ctx) {
		return s.inner.GetBucket(ctx, bucket)
	}

	recs, ok, err := s.cache.Get(ctx, bucket)
	if err != nil {
		logger.L(ctx).Warn("Bucket cache read failed", zap.String("bucket", bucket.String()), zap.Error(err))
	}
	s.observe(bucket, ok)
	if ok {
		return recs, nil
	}

	// The generation must be read before the load: a write that lands
	// after it bumps the generation and the Set below is refused.
	gen, genErr := s.cache.Generation(ctx, bucket)
	recs, err = s.inner.GetBucket(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		logger.L(ctx).Warn("Bucket cache generation read failed", zap.String("bucket", bucket.String()), zap.Error(genErr))
		return recs, nil
	}
	stored, err := s.cache.Set(ctx, bucket, recs, gen, s.ttl)
	if err != nil {
		logger.L(ctx).Warn("Bucket cache write failed", zap.String("bucket", bucket.String()), zap.Error(err))
	} else if !stored {
		logger.L(ctx).Debug("Bucket changed during load, not cached", zap.String("bucket", bucket.String()))
	}
	return recs, nil
}

// Get reads a single record through the cached bucket when it is present
func (s *CachedStore) Get(ctx context.Context, path record.Path) (*record.Record, error) {
	if record.IsFresh(ctx) {
		return s.inner.Get(ctx, path)
	}
	if recs, ok, err := s.cache.Get(ctx, path.Bucket()); err == nil && ok {
		if rec, found := recs[path.ID]; found {
			return rec, nil
		}
	}
	return s.inner.Get(ctx, path)
}

// Push writes through and invalidates the bucket
func (s *CachedStore) Push(ctx context.Context, bucket record.Bucket, payload record.Payload) (*record.Record, error) {
	rec, err := s.inner.Push(ctx, bucket, payload)
	s.invalidate(ctx, bucket)
	return rec, err
}

// Put writes through and invalidates the bucket
func (s *CachedStore) Put(ctx context.Context, path record.Path, payload record.Payload) (*record.Record, error) {
	rec, err := s.inner.Put(ctx, path, payload)
	s.invalidate(ctx, path.Bucket())
	return rec, err
}

// Delete writes through and invalidates the bucket
func (s *CachedStore) Delete(ctx context.Context, path record.Path) error {
	err := s.inner.Delete(ctx, path)
	s.invalidate(ctx, path.Bucket())
	return err
}

// Refresh evicts the cached bucket and refreshes the inner store
func (s *CachedStore) Refresh(ctx context.Context, bucket record.Bucket) error {
	if err := s.cache.Invalidate(ctx, bucket); err != nil {
		return err
	}
	return s.inner.Refresh(ctx, bucket)
}

// invalidate runs even when the write failed, since a failed write may
// still have reached the database
func (s *CachedStore) invalidate(ctx context.Context, bucket record.Bucket) {
	if !bucket.IsValid() {
		return
	}
	if err := s.cache.Invalidate(ctx, bucket); err != nil {
		logger.L(ctx).Error("Bucket cache invalidation failed", zap.String("bucket", bucket.String()), zap.Error(err))
	}
}

var _ record.Store = (*CachedStore)(nil)
