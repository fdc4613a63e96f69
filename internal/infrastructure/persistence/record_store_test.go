package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suppliers = record.NewBucket("partyMaster", "supplier")

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("rec-%03d", n), nil
	}
}

func newTestStore(t *testing.T, opts ...StoreOption) *GormRecordStore {
	t.Helper()
	db := newSQLiteDatabase(t)
	return NewGormRecordStore(db.DB, append([]StoreOption{WithIDGenerator(sequentialIDs())}, opts...)...)
}

func TestGormRecordStore_PushAndGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return now }))

	rec, err := store.Push(ctx, suppliers, record.Payload{
		"partyName": "Acme Metals",
		"items":     []any{map[string]any{"qty": 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "partyMaster/supplier/rec-001", rec.Path.String())
	assert.Equal(t, int64(1), rec.Version)

	got, err := store.Get(ctx, rec.Path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Metals", got.Payload.String("partyName"))
	assert.True(t, now.Equal(got.CreatedAt))

	items, ok := got.Payload["items"].([]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("5"), items[0].(map[string]any)["qty"])
}

func TestGormRecordStore_GetBucket(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("empty bucket is an empty map", func(t *testing.T) {
		recs, err := store.GetBucket(ctx, suppliers)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("returns only the requested bucket", func(t *testing.T) {
		_, err := store.Push(ctx, suppliers, record.Payload{"partyName": "A"})
		require.NoError(t, err)
		_, err = store.Push(ctx, suppliers, record.Payload{"partyName": "B"})
		require.NoError(t, err)
		_, err = store.Push(ctx, record.NewBucket("partyMaster", "buyer"), record.Payload{"partyName": "C"})
		require.NoError(t, err)

		recs, err := store.GetBucket(ctx, suppliers)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "A", recs["rec-001"].Payload.String("partyName"))
		assert.Equal(t, "B", recs["rec-002"].Payload.String("partyName"))
	})

	t.Run("rejects malformed buckets", func(t *testing.T) {
		_, err := store.GetBucket(ctx, record.NewBucket("partyMaster", "a/b"))
		assert.ErrorIs(t, err, record.ErrInvalidPath)
	})
}

func TestGormRecordStore_Put(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	store := newTestStore(t, WithClock(func() time.Time { return clock }))

	t.Run("creates a missing record", func(t *testing.T) {
		path := suppliers.Path("legacy-1")
		rec, err := store.Put(ctx, path, record.Payload{"partyName": "Old Co"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rec.Version)

		got, err := store.Get(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Old Co", got.Payload.String("partyName"))
	})

	t.Run("replaces wholesale and bumps the version", func(t *testing.T) {
		created, err := store.Push(ctx, suppliers, record.Payload{"partyName": "Acme", "email": "a@acme.in"})
		require.NoError(t, err)

		clock = clock.Add(time.Hour)
		updated, err := store.Put(ctx, created.Path, record.Payload{"partyName": "Acme Ltd"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Version)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, clock.Equal(updated.UpdatedAt))

		got, err := store.Get(ctx, created.Path)
		require.NoError(t, err)
		assert.Equal(t, record.Payload{"partyName": "Acme Ltd"}, got.Payload)
		assert.Equal(t, int64(2), got.Version)
	})
}

func TestGormRecordStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rec, err := store.Push(ctx, suppliers, record.Payload{"partyName": "Acme"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, rec.Path))

	_, err = store.Get(ctx, rec.Path)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = store.Delete(ctx, rec.Path)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormRecordStore_NormalizesOnRead(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, WithNormalizer(DefaultNormalizer()))

	rec, err := store.Put(ctx, record.NewBucket("documents", "purchase-order").Path("po-1"), record.Payload{
		"poNumber":     "PO-7",
		"supplier":     "Acme",
		"supplierCode": "SUP-1",
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, rec.Path)
	require.NoError(t, err)
	assert.Equal(t, record.Payload{
		"documentNumber":   "PO-7",
		"counterpartyName": "Acme",
		"counterpartyCode": "SUP-1",
	}, got.Payload)
}

func TestGormRecordStore_PersistenceFailures(t *testing.T) {
	ctx := context.Background()
	path := suppliers.Path("rec-1")

	t.Run("read failure is wrapped", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		store := NewGormRecordStore(db.DB)

		mock.ExpectQuery(`SELECT \* FROM "records" WHERE collection = \$1 AND subtype = \$2`).
			WillReturnError(errors.New("connection reset"))

		_, err := store.GetBucket(ctx, suppliers)
		require.Error(t, err)
		assert.True(t, shared.IsPersistenceFailure(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete failure is wrapped", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		store := NewGormRecordStore(db.DB)

		mock.ExpectExec(`DELETE FROM "records" WHERE collection = \$1 AND subtype = \$2 AND record_id = \$3`).
			WithArgs("partyMaster", "supplier", "rec-1").
			WillReturnError(errors.New("permission denied"))

		err := store.Delete(ctx, path)
		require.Error(t, err)
		assert.True(t, shared.IsPersistenceFailure(err))
		assert.Contains(t, err.Error(), "partyMaster/supplier/rec-1")
	})

	t.Run("lost version race is a conflict", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		store := NewGormRecordStore(db.DB)

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "records" WHERE collection = \$1 AND subtype = \$2 AND record_id = \$3`).
			WillReturnRows(sqlmock.NewRows([]string{"collection", "subtype", "record_id", "payload", "version", "created_at", "updated_at"}).
				AddRow("partyMaster", "supplier", "rec-1", `{"partyName":"Acme"}`, 3, now, now))
		mock.ExpectExec(`UPDATE "records" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := store.Put(ctx, path, record.Payload{"partyName": "Acme Ltd"})
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.False(t, shared.IsPersistenceFailure(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
