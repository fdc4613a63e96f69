package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/erp/mfgdesk/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecordStore implements record.Store on the records table
type GormRecordStore struct {
	db         *gorm.DB
	normalizer *record.Normalizer
	now        func() time.Time
	newID      func() (string, error)
}

// StoreOption configures a GormRecordStore
type StoreOption func(*GormRecordStore)

// WithNormalizer rewrites legacy payload fields on every read
func WithNormalizer(n *record.Normalizer) StoreOption {
	return func(s *GormRecordStore) {
		s.normalizer = n
	}
}

// WithClock overrides the clock used for timestamps
func WithClock(now func() time.Time) StoreOption {
	return func(s *GormRecordStore) {
		s.now = now
	}
}

// WithIDGenerator overrides how Push generates record ids
func WithIDGenerator(gen func() (string, error)) StoreOption {
	return func(s *GormRecordStore) {
		s.newID = gen
	}
}

// NewGormRecordStore creates a new GormRecordStore
func NewGormRecordStore(db *gorm.DB, opts ...StoreOption) *GormRecordStore {
	s := &GormRecordStore{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: newRecordID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newRecordID returns a time-ordered UUIDv7, so ids sort in push order
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// WithTx returns a store bound to the given transaction
func (s *GormRecordStore) WithTx(tx *gorm.DB) *GormRecordStore {
	clone := *s
	clone.db = tx
	return &clone
}

// GetBucket returns every record of bucket keyed by id
func (s *GormRecordStore) GetBucket(ctx context.Context, bucket record.Bucket) (map[string]*record.Record, error) {
	if !bucket.IsValid() {
		return nil, record.ErrInvalidPath
	}

	var rows []models.RecordModel
	err := s.db.WithContext(ctx).
		Where("collection = ? AND subtype = ?", bucket.Collection, bucket.Subtype).
		Order("record_id").
		Find(&rows).Error
	if err != nil {
		return nil, shared.NewPersistenceError("read", bucket.String(), err)
	}

	out := make(map[string]*record.Record, len(rows))
	for i := range rows {
		rec, err := s.toRecord(&rows[i])
		if err != nil {
			return nil, shared.NewPersistenceError("decode", rows[i].Path().String(), err)
		}
		out[rec.Path.ID] = rec
	}
	return out, nil
}

// Get returns the record at path
func (s *GormRecordStore) Get(ctx context.Context, path record.Path) (*record.Record, error) {
	if !path.IsValid() {
		return nil, record.ErrInvalidPath
	}

	var row models.RecordModel
	err := s.scope(ctx, path).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("read", path.String(), err)
	}

	rec, err := s.toRecord(&row)
	if err != nil {
		return nil, shared.NewPersistenceError("decode", path.String(), err)
	}
	return rec, nil
}

// Push stores payload under a new id in bucket
func (s *GormRecordStore) Push(ctx context.Context, bucket record.Bucket, payload record.Payload) (*record.Record, error) {
	if !bucket.IsValid() {
		return nil, record.ErrInvalidPath
	}

	id, err := s.newID()
	if err != nil {
		return nil, shared.NewPersistenceError("push", bucket.String(), err)
	}
	path := bucket.Path(id)

	body, err := encodePayload(payload)
	if err != nil {
		return nil, shared.NewPersistenceError("push", path.String(), err)
	}

	now := s.now()
	row := models.RecordModelFromPath(path, body)
	row.CreatedAt = now
	row.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrAlreadyExists
		}
		return nil, shared.NewPersistenceError("push", path.String(), err)
	}

	return &record.Record{
		Path:      path,
		Payload:   payload.Clone(),
		Version:   row.Version,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Put replaces the record at path, creating it when absent. The version
// counter is bumped with a compare-and-set on the previous version, so two
// concurrent replaces of the same record cannot both succeed silently.
func (s *GormRecordStore) Put(ctx context.Context, path record.Path, payload record.Payload) (*record.Record, error) {
	if !path.IsValid() {
		return nil, record.ErrInvalidPath
	}

	body, err := encodePayload(payload)
	if err != nil {
		return nil, shared.NewPersistenceError("put", path.String(), err)
	}

	now := s.now()
	var saved models.RecordModel
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.RecordModel
		err := tx.Where("collection = ? AND subtype = ? AND record_id = ?", path.Collection, path.Subtype, path.ID).
			Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = *models.RecordModelFromPath(path, body)
			saved.CreatedAt = now
			saved.UpdatedAt = now
			return tx.Create(&saved).Error
		case err != nil:
			return err
		}

		result := tx.Model(&models.RecordModel{}).
			Where("collection = ? AND subtype = ? AND record_id = ? AND version = ?",
				path.Collection, path.Subtype, path.ID, existing.Version).
			Updates(map[string]any{
				"payload":    body,
				"version":    existing.Version + 1,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		saved = existing
		saved.Payload = body
		saved.Version = existing.Version + 1
		saved.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, shared.NewPersistenceError("put", path.String(), err)
	}

	return &record.Record{
		Path:      path,
		Payload:   payload.Clone(),
		Version:   saved.Version,
		CreatedAt: saved.CreatedAt,
		UpdatedAt: saved.UpdatedAt,
	}, nil
}

// Delete removes the record at path
func (s *GormRecordStore) Delete(ctx context.Context, path record.Path) error {
	if !path.IsValid() {
		return record.ErrInvalidPath
	}

	result := s.scope(ctx, path).Delete(&models.RecordModel{})
	if result.Error != nil {
		return shared.NewPersistenceError("delete", path.String(), result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Refresh is a no-op: every read goes to the database
func (s *GormRecordStore) Refresh(_ context.Context, bucket record.Bucket) error {
	if !bucket.IsValid() {
		return record.ErrInvalidPath
	}
	return nil
}

func (s *GormRecordStore) scope(ctx context.Context, path record.Path) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("collection = ? AND subtype = ? AND record_id = ?", path.Collection, path.Subtype, path.ID)
}

func (s *GormRecordStore) toRecord(row *models.RecordModel) (*record.Record, error) {
	payload, err := decodePayload(row.Payload)
	if err != nil {
		return nil, err
	}
	path := row.Path()
	s.normalizer.Normalize(path.Bucket(), payload)
	return &record.Record{
		Path:      path,
		Payload:   payload,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func encodePayload(p record.Payload) (string, error) {
	if p == nil {
		p = record.Payload{}
	}
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return string(body), nil
}

// decodePayload keeps numbers as json.Number so amounts survive unchanged
func decodePayload(body string) (record.Payload, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()
	var p record.Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if p == nil {
		p = record.Payload{}
	}
	return p, nil
}
