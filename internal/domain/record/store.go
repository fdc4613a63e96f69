package record

import (
	"context"
	"time"
)

// Payload is the stored shape of a record: a flat mapping of field name to
// scalar value, with line items as a nested ordered list under "items".
type Payload map[string]any

// Clone returns a shallow copy of the payload
func (p Payload) Clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// String returns the string stored under key, or "" when absent or not a string
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Record is a payload together with its address and bookkeeping
type Record struct {
	Path      Path
	Payload   Payload
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the persistence collaborator: path-addressed records with
// bucket reads, wholesale replace and delete.
//
// Writes invalidate any cached copy of the affected bucket, so a read that
// follows a write always observes it. Refresh drops the cached copy explicitly.
type Store interface {
	// GetBucket returns every record of the bucket keyed by id.
	// An empty bucket yields an empty map, not an error.
	GetBucket(ctx context.Context, bucket Bucket) (map[string]*Record, error)

	// Get returns the record at path, or shared.ErrNotFound.
	Get(ctx context.Context, path Path) (*Record, error)

	// Push stores payload under a newly generated id in bucket.
	Push(ctx context.Context, bucket Bucket, payload Payload) (*Record, error)

	// Put replaces the record at path wholesale, creating it when absent.
	Put(ctx context.Context, path Path, payload Payload) (*Record, error)

	// Delete removes the record at path. Deleting a missing record returns
	// shared.ErrNotFound.
	Delete(ctx context.Context, path Path) error

	// Refresh discards any cached copy of bucket.
	Refresh(ctx context.Context, bucket Bucket) error
}

type freshReadKey struct{}

// Fresh marks ctx so that reads skip any cached copy and go to the database.
// Key checks and sequence allocation read this way.
func Fresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshReadKey{}, true)
}

// IsFresh reports whether ctx was marked by Fresh
func IsFresh(ctx context.Context) bool {
	fresh, _ := ctx.Value(freshReadKey{}).(bool)
	return fresh
}
