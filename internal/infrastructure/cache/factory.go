package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backends bundles the cache-side collaborators of the record store
type Backends struct {
	Buckets     BucketCache
	Locker      Locker
	Idempotency shared.IdempotencyStore
	client      redis.UniversalClient
	closers     []func() error
}

// Distributed reports whether the backends are shared through Redis
func (b *Backends) Distributed() bool {
	return b.client != nil
}

// Client returns the Redis client, or nil for in-process backends
func (b *Backends) Client() redis.UniversalClient {
	return b.client
}

// Close releases the Redis client or stops the in-process sweepers
func (b *Backends) Close() error {
	var firstErr error
	for _, c := range b.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Factory builds Backends from configuration
type Factory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back to
// in-process backends. Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// NewFactory creates a new factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewRedisClient connects to Redis and pings it
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Create returns Redis backends when Redis is enabled and reachable, and
// in-process backends otherwise
func (f *Factory) Create() (*Backends, error) {
	if !f.redisConfig.Enabled {
		f.logger.Info("Redis disabled, using in-process cache and locks")
		return f.CreateInMemory(), nil
	}

	client, err := NewRedisClient(f.redisConfig)
	if err == nil {
		f.logger.Info("Using Redis cache and locks", zap.String("addr", f.redisConfig.Addr()))
		return f.CreateRedis(client), nil
	}
	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis required but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-process cache and locks. "+
		"Item codes may collide when more than one instance is running.",
		zap.Error(err),
	)
	return f.CreateInMemory(), nil
}

// CreateRedis builds backends over an existing client
func (f *Factory) CreateRedis(client redis.UniversalClient) *Backends {
	return &Backends{
		Buckets:     NewRedisBucketCache(client),
		Locker:      NewRedisLocker(client, 50*time.Millisecond),
		Idempotency: NewRedisIdempotencyStore(client, ""),
		client:      client,
		closers:     []func() error{client.Close},
	}
}

// CreateInMemory builds in-process backends
func (f *Factory) CreateInMemory() *Backends {
	buckets := NewInMemoryBucketCache()
	idem := NewInMemoryIdempotencyStore()
	return &Backends{
		Buckets:     buckets,
		Locker:      NewLocalLocker(),
		Idempotency: idem,
		closers:     []func() error{buckets.Close, idem.Close},
	}
}
