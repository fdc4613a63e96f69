package master

import (
	"context"
	"testing"
	"time"

	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/persistence"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func newRecordStore(t *testing.T) record.Store {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return persistence.NewGormRecordStore(db.DB, persistence.WithNormalizer(persistence.DefaultNormalizer()))
}

// recordingObserver captures ObserveWrite calls
type recordingObserver struct {
	writes []string
}

func (o *recordingObserver) ObserveWrite(collection, subtype, op string) {
	o.writes = append(o.writes, collection+"/"+subtype+":"+op)
}

// MockRepository is a mock implementation of record.Repository[T]
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) Collection() string {
	return m.Called().String(0)
}

func (m *MockRepository[T]) FindAll(ctx context.Context, subtype string) ([]record.Entry[T], error) {
	args := m.Called(ctx, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Entry[T]), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, subtype, id string) (*record.Entry[T], error) {
	args := m.Called(ctx, subtype, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Entry[T]), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, subtype string, value T) (*record.Entry[T], error) {
	args := m.Called(ctx, subtype, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Entry[T]), args.Error(1)
}

func (m *MockRepository[T]) Replace(ctx context.Context, subtype, id string, value T) (*record.Entry[T], error) {
	args := m.Called(ctx, subtype, id, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.Entry[T]), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, subtype, id string) error {
	return m.Called(ctx, subtype, id).Error(0)
}

func (m *MockRepository[T]) Refresh(ctx context.Context, subtype string) error {
	return m.Called(ctx, subtype).Error(0)
}
