package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers the Idempotency-Key of create requests so that a
// form submitted twice pushes a single record.
type IdempotencyStore interface {
	// MarkProcessed claims key for ttl. It returns false when the key was
	// already claimed and has not expired.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether key is currently claimed
	IsProcessed(ctx context.Context, key string) (bool, error)

	Close() error
}

// DefaultIdempotencyTTL is how long a create request key stays claimed
const DefaultIdempotencyTTL = 24 * time.Hour
