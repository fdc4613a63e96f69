package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotObtained is returned when a lock stays held past the caller's deadline
var ErrLockNotObtained = shared.NewDomainError("LOCK_NOT_OBTAINED", "Another request is allocating the same sequence, please retry")

// Locker serializes work on a key across requests
type Locker interface {
	// Obtain blocks until key is held or ctx is done. The returned release
	// function frees the lock.
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

const lockKeyPrefix = "mfgdesk:lock:"

// RedisLocker is a distributed Locker backed by redislock
type RedisLocker struct {
	client  *redislock.Client
	backoff time.Duration
}

// NewRedisLocker creates a locker over client that retries every backoff
func NewRedisLocker(client redis.UniversalClient, backoff time.Duration) *RedisLocker {
	if backoff <= 0 {
		backoff = 50 * time.Millisecond
	}
	return &RedisLocker{client: redislock.New(client), backoff: backoff}
}

// Obtain retries until the lock is obtained or ctx expires
func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, lockKeyPrefix+key, ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.backoff),
	})
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		return nil, ErrLockNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
		return nil
	}, nil
}

// LocalLocker is an in-process Locker for single-instance deployments.
// The ttl is ignored; locks are held until released.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker creates a LocalLocker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Obtain waits for key or until ctx is done
func (l *LocalLocker) Obtain(ctx context.Context, key string, _ time.Duration) (func(context.Context) error, error) {
	ch := l.slot(key)
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ErrLockNotObtained
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() { <-ch })
		return nil
	}, nil
}

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = (*LocalLocker)(nil)
)
