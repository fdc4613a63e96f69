package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// MeterProvider pushes OpenTelemetry metrics to the collector. The Prometheus
// registry in Metrics is scraped separately; this covers signals that only
// make sense pushed next to the traces, such as the database pool.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
}

// MetricsOption configures NewMeterProvider
type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	reader sdkmetric.Reader
}

// WithMetricReader replaces the periodic OTLP reader, e.g. with a manual reader in tests
func WithMetricReader(r sdkmetric.Reader) MetricsOption {
	return func(o *metricsOptions) { o.reader = r }
}

// NewMeterProvider creates the provider and installs it globally.
// Export needs both cfg.Enabled and enabled; otherwise Meter returns the global no-op.
func NewMeterProvider(ctx context.Context, cfg Config, enabled bool, interval time.Duration, logger *zap.Logger, opts ...MetricsOption) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger}
	if !cfg.Enabled || !enabled {
		return mp, nil
	}

	var o metricsOptions
	for _, opt := range opts {
		opt(&o)
	}
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if o.reader == nil {
		exporterOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
		if cfg.Insecure {
			exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
		}
		exp, err := otlpmetricgrpc.New(ctx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
		}
		o.reader = sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))
	}

	res, err := serviceResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(o.reader),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// Meter returns a named meter from the provider
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled returns whether metrics are exported
func (mp *MeterProvider) IsEnabled() bool {
	return mp.provider != nil
}

// Shutdown flushes pending metrics and stops the reader
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	mp.logger.Info("OpenTelemetry MeterProvider shutdown complete")
	return nil
}

// AttrDBPoolState labels db_pool_connections
var AttrDBPoolState = attribute.Key("db.pool.state")

// RegisterDBPoolMetrics reports sql.DB pool statistics on every collection.
// The returned registration should be unregistered before the pool is closed.
func RegisterDBPoolMetrics(meter metric.Meter, db *sql.DB) (metric.Registration, error) {
	conns, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections: %w", err)
	}
	maxConns, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum open connections allowed"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_connections_max: %w", err)
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Connections waited for"),
		metric.WithUnit("{wait}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter db_pool_wait_total: %w", err)
	}

	idle := metric.WithAttributes(AttrDBPoolState.String("idle"))
	inUse := metric.WithAttributes(AttrDBPoolState.String("in_use"))

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(conns, int64(stats.Idle), idle)
		o.ObserveInt64(conns, int64(stats.InUse), inUse)
		o.ObserveInt64(maxConns, int64(stats.MaxOpenConnections))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, conns, maxConns, waits)
}
