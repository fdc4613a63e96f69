package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RecordRepository implements record.Repository[T] over a record.Store.
// Values are stored as their JSON encoding.
type RecordRepository[T any] struct {
	store      record.Store
	collection string
}

// NewRecordRepository creates a typed repository for collection
func NewRecordRepository[T any](store record.Store, collection string) *RecordRepository[T] {
	return &RecordRepository[T]{store: store, collection: collection}
}

// Collection returns the collection the repository reads and writes
func (r *RecordRepository[T]) Collection() string {
	return r.collection
}

// FindAll returns every decodable record of subtype in id order.
// Undecodable records are logged and skipped.
func (r *RecordRepository[T]) FindAll(ctx context.Context, subtype string) ([]record.Entry[T], error) {
	recs, err := r.store.GetBucket(ctx, record.NewBucket(r.collection, subtype))
	if err != nil {
		return nil, err
	}

	entries := make([]record.Entry[T], 0, len(recs))
	for _, rec := range recs {
		entry, err := decodeEntry[T](rec)
		if err != nil {
			logger.L(ctx).Warn("Skipping undecodable record",
				zap.String("path", rec.Path.String()),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, *entry)
	}
	slices.SortFunc(entries, func(a, b record.Entry[T]) int {
		return strings.Compare(a.ID, b.ID)
	})
	return entries, nil
}

// FindByID returns the record id of subtype
func (r *RecordRepository[T]) FindByID(ctx context.Context, subtype, id string) (*record.Entry[T], error) {
	rec, err := r.store.Get(ctx, record.NewBucket(r.collection, subtype).Path(id))
	if err != nil {
		return nil, err
	}
	return decodeEntry[T](rec)
}

// Create pushes value under a new id
func (r *RecordRepository[T]) Create(ctx context.Context, subtype string, value T) (*record.Entry[T], error) {
	payload, err := toPayload(value)
	if err != nil {
		return nil, err
	}
	rec, err := r.store.Push(ctx, record.NewBucket(r.collection, subtype), payload)
	if err != nil {
		return nil, err
	}
	return newEntry(rec, value), nil
}

// Replace overwrites the record id with value
func (r *RecordRepository[T]) Replace(ctx context.Context, subtype, id string, value T) (*record.Entry[T], error) {
	payload, err := toPayload(value)
	if err != nil {
		return nil, err
	}
	rec, err := r.store.Put(ctx, record.NewBucket(r.collection, subtype).Path(id), payload)
	if err != nil {
		return nil, err
	}
	return newEntry(rec, value), nil
}

// Delete removes the record id
func (r *RecordRepository[T]) Delete(ctx context.Context, subtype, id string) error {
	return r.store.Delete(ctx, record.NewBucket(r.collection, subtype).Path(id))
}

// Refresh drops any cached copy of the subtype bucket
func (r *RecordRepository[T]) Refresh(ctx context.Context, subtype string) error {
	return r.store.Refresh(ctx, record.NewBucket(r.collection, subtype))
}

func toPayload(value any) (record.Payload, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return decodePayload(string(raw))
}

func decodeEntry[T any](rec *record.Record) (*record.Entry[T], error) {
	raw, err := json.Marshal(rec.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", rec.Path, err)
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode %s: %w", rec.Path, err)
	}
	return newEntry(rec, value), nil
}

func newEntry[T any](rec *record.Record, value T) *record.Entry[T] {
	return &record.Entry[T]{
		ID:        rec.Path.ID,
		Subtype:   rec.Path.Subtype,
		Value:     value,
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

var _ record.Repository[struct{}] = (*RecordRepository[struct{}])(nil)
