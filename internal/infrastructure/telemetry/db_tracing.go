package telemetry

import (
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing
type DBTracingConfig struct {
	Enabled bool
	// DBName is reported as db.name on every span
	DBName string
	// SlowQueryThresh marks spans of longer statements with db.slow_query
	SlowQueryThresh time.Duration
	// IncludeVariables keeps bound values in db.statement (development only)
	IncludeVariables bool
	// TracerProvider overrides the global provider
	TracerProvider trace.TracerProvider
}

const queryStartKey = "telemetry:query_start"

// callbackRegistrar is satisfied by the values gorm's processor Before/After return
type callbackRegistrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

// RegisterDBTracing installs otelgorm on db plus a callback that flags slow
// statements and records row counts on the statement span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.IncludeVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	cb := db.Callback()
	// The after hooks run before otelgorm ends the span.
	hooks := []struct {
		op     string
		before callbackRegistrar
		after  callbackRegistrar
	}{
		{"create", cb.Create().Before("gorm:create"), cb.Create().After("gorm:create").Before("otel:after:create")},
		{"query", cb.Query().Before("gorm:query"), cb.Query().After("gorm:query").Before("otel:after:query")},
		{"update", cb.Update().Before("gorm:update"), cb.Update().After("gorm:update").Before("otel:after:update")},
		{"delete", cb.Delete().Before("gorm:delete"), cb.Delete().After("gorm:delete").Before("otel:after:delete")},
		{"row", cb.Row().Before("gorm:row"), cb.Row().After("gorm:row").Before("otel:after:row")},
		{"raw", cb.Raw().Before("gorm:raw"), cb.Raw().After("gorm:raw").Before("otel:after:raw")},
	}
	for _, h := range hooks {
		if err := h.before.Register("telemetry:before_"+h.op, markQueryStart); err != nil {
			return err
		}
		if err := h.after.Register("telemetry:after_"+h.op, slowQueryHook(cfg.SlowQueryThresh)); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled",
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
		zap.Bool("include_variables", cfg.IncludeVariables),
	)
	return nil
}

func markQueryStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func slowQueryHook(threshold time.Duration) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		span := trace.SpanFromContext(db.Statement.Context)
		if !span.IsRecording() {
			return
		}

		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		if db.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
		}
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
		}

		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		if elapsed := time.Since(start); elapsed > threshold {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
