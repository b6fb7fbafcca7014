package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include query variables in spans (development only)
	SlowQueryThresh time.Duration // queries slower than this are flagged on their span
	DBSystem        string
}

// DefaultDBTracingConfig returns default configuration for database tracing.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		Enabled:         false,
		LogFullSQL:      false,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

// DBTracingPlugin registers otelgorm plus slow query and error marking.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type queryStartKey struct{}

// Register installs tracing on db. It is a no-op when tracing is disabled.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	// Registered ahead of otelgorm so the after callbacks see its span
	// before otelgorm ends it.
	if err := p.registerTimingCallbacks(db); err != nil {
		return err
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)
	return nil
}

func (p *DBTracingPlugin) registerTimingCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("campaign_timing:before_create", markQueryStart),
		cb.Query().Before("gorm:query").Register("campaign_timing:before_query", markQueryStart),
		cb.Update().Before("gorm:update").Register("campaign_timing:before_update", markQueryStart),
		cb.Delete().Before("gorm:delete").Register("campaign_timing:before_delete", markQueryStart),
		cb.Row().Before("gorm:row").Register("campaign_timing:before_row", markQueryStart),
		cb.Raw().Before("gorm:raw").Register("campaign_timing:before_raw", markQueryStart),
		cb.Create().After("gorm:create").Register("campaign_timing:after_create", p.afterQuery),
		cb.Query().After("gorm:query").Register("campaign_timing:after_query", p.afterQuery),
		cb.Update().After("gorm:update").Register("campaign_timing:after_update", p.afterQuery),
		cb.Delete().After("gorm:delete").Register("campaign_timing:after_delete", p.afterQuery),
		cb.Row().After("gorm:row").Register("campaign_timing:after_row", p.afterQuery),
		cb.Raw().After("gorm:raw").Register("campaign_timing:after_raw", p.afterQuery),
	)
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

// afterQuery annotates the current span with row counts, errors and slowness.
func (p *DBTracingPlugin) afterQuery(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		elapsed := time.Since(start)
		if elapsed > p.config.SlowQueryThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
			span.AddEvent("slow_query_warning", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
			))
		}
	}
}
