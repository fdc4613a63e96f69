package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func newTracedDB(t *testing.T, cfg DBTracingConfig) (*gorm.DB, *tracetest.SpanRecorder) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))

	recorder := tracetest.NewSpanRecorder()
	cfg.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, RegisterDBTracing(db, cfg, zap.NewNop()))
	return db, recorder
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db, recorder := newTracedDB(t, DBTracingConfig{Enabled: false})

	require.NoError(t, db.Create(&tracedRow{Name: "a"}).Error)
	assert.Empty(t, recorder.Ended())
}

func TestRegisterDBTracing_RecordsStatements(t *testing.T) {
	db, recorder := newTracedDB(t, DBTracingConfig{
		Enabled:         true,
		DBName:          "mfgdesk",
		SlowQueryThresh: time.Nanosecond,
	})
	ctx := context.Background()

	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "a"}).Error)
	var rows []tracedRow
	require.NoError(t, db.WithContext(ctx).Find(&rows).Error)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)

	slow := 0
	for _, span := range spans {
		for _, kv := range span.Attributes() {
			if kv.Key == "db.slow_query" && kv.Value.AsBool() {
				slow++
			}
		}
	}
	assert.Positive(t, slow)
}
