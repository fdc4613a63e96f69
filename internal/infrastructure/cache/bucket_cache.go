// Package cache holds the Redis-backed caches and locks in front of the
// record store, each with an in-process fallback for single-instance runs.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
)

// BucketCache caches whole record buckets. Each bucket carries a generation
// that every Invalidate bumps; Set only stores a bucket loaded under the
// current generation, so a load that raced a write is never cached.
type BucketCache interface {
	// Get returns the cached bucket; ok is false on a miss
	Get(ctx context.Context, bucket record.Bucket) (recs map[string]*record.Record, ok bool, err error)
	// Generation returns the bucket's current generation. Read it before
	// loading the bucket that is later passed to Set.
	Generation(ctx context.Context, bucket record.Bucket) (int64, error)
	// Set caches the bucket for ttl if its generation is still gen.
	// stored is false when an invalidation happened in between.
	Set(ctx context.Context, bucket record.Bucket, recs map[string]*record.Record, gen int64, ttl time.Duration) (stored bool, err error)
	// Invalidate drops the cached bucket and bumps its generation
	Invalidate(ctx context.Context, bucket record.Bucket) error
}

// cachedRecord is the wire shape of a record inside a cached bucket
type cachedRecord struct {
	ID        string         `json:"id"`
	Payload   record.Payload `json:"payload"`
	Version   int64          `json:"version"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func encodeBucket(recs map[string]*record.Record) ([]byte, error) {
	out := make([]cachedRecord, 0, len(recs))
	for id, rec := range recs {
		out = append(out, cachedRecord{
			ID:        id,
			Payload:   rec.Payload,
			Version:   rec.Version,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	return json.Marshal(out)
}

func decodeBucket(bucket record.Bucket, raw []byte) (map[string]*record.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var in []cachedRecord
	if err := dec.Decode(&in); err != nil {
		return nil, err
	}
	recs := make(map[string]*record.Record, len(in))
	for _, c := range in {
		if c.Payload == nil {
			c.Payload = record.Payload{}
		}
		recs[c.ID] = &record.Record{
			Path:      bucket.Path(c.ID),
			Payload:   c.Payload,
			Version:   c.Version,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return recs, nil
}

// cloneBucket copies the map and every record so that callers cannot mutate
// the cached copy
func cloneBucket(recs map[string]*record.Record) map[string]*record.Record {
	out := make(map[string]*record.Record, len(recs))
	for id, rec := range recs {
		cp := *rec
		cp.Payload = rec.Payload.Clone()
		out[id] = &cp
	}
	return out
}
