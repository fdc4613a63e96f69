package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recordingExporter keeps exported log records in memory
type recordingExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error   { return nil }
func (e *recordingExporter) ForceFlush(context.Context) error { return nil }

func (e *recordingExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.records))
	for _, r := range e.records {
		out = append(out, r.Body().AsString())
	}
	return out
}

func TestNewLoggerProvider_Disabled(t *testing.T) {
	base := zap.NewNop()

	lp, err := NewLoggerProvider(context.Background(), Config{Enabled: true}, false, base)
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())
	assert.Same(t, base, lp.Tee(base, zapcore.InfoLevel))
	assert.NoError(t, lp.ForceFlush(context.Background()))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_TeeForwardsRecords(t *testing.T) {
	previous := global.GetLoggerProvider()
	t.Cleanup(func() { global.SetLoggerProvider(previous) })

	exp := &recordingExporter{}
	lp, err := NewLoggerProvider(context.Background(), Config{Enabled: true, ServiceName: "mfgdesk-test"}, true,
		zap.NewNop(), WithLogExporter(exp))
	require.NoError(t, err)
	require.True(t, lp.IsEnabled())
	t.Cleanup(func() { _ = lp.Shutdown(context.Background()) })

	core, local := observer.New(zapcore.DebugLevel)
	logger := lp.Tee(zap.New(core), zapcore.InfoLevel)

	logger.Debug("cache miss")
	logger.Info("Party created", zap.String("subtype", "supplier"))
	logger.Warn("Slow query")
	require.NoError(t, lp.ForceFlush(context.Background()))

	assert.Equal(t, 3, local.Len())
	assert.Equal(t, []string{"Party created", "Slow query"}, exp.bodies())

	exp.mu.Lock()
	defer exp.mu.Unlock()
	assert.Equal(t, log.SeverityWarn, exp.records[1].Severity())
}

func TestLevelFilterCore(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	filtered := &levelFilterCore{Core: core, minLevel: zapcore.WarnLevel}

	assert.False(t, filtered.Enabled(zapcore.InfoLevel))
	assert.True(t, filtered.Enabled(zapcore.ErrorLevel))

	with := filtered.With([]zapcore.Field{zap.String("k", "v")})
	assert.False(t, with.Enabled(zapcore.InfoLevel))
}
