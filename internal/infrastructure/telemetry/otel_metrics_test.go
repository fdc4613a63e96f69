package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	mp, err := NewMeterProvider(context.Background(), Config{Enabled: false}, true, 0, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("x"))
	assert.NoError(t, mp.Shutdown(context.Background()))
}

func TestRegisterDBPoolMetrics(t *testing.T) {
	previous := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	reader := sdkmetric.NewManualReader()
	mp, err := NewMeterProvider(context.Background(), Config{Enabled: true, ServiceName: "mfgdesk-test"}, true, 0,
		zap.NewNop(), WithMetricReader(reader))
	require.NoError(t, err)
	require.True(t, mp.IsEnabled())
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(3)
	t.Cleanup(func() { _ = sqlDB.Close() })

	reg, err := RegisterDBPoolMetrics(mp.Meter("mfgdesk/db"), sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Unregister() })

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	maxConns, ok := findMetric(rm, "db_pool_connections_max")
	require.True(t, ok)
	gauge, ok := maxConns.Data.(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(3), gauge.DataPoints[0].Value)

	conns, ok := findMetric(rm, "db_pool_connections")
	require.True(t, ok)
	assert.Len(t, conns.Data.(metricdata.Gauge[int64]).DataPoints, 2)

	_, ok = findMetric(rm, "db_pool_wait_total")
	assert.True(t, ok)
}
