package main

import (
	"context"
	"fmt"

	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/persistence"
	"github.com/campaign/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the logger every command needs
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// openDatabase connects with a zap-backed GORM logger and, when enabled,
// registers the query tracing plugin
func openDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*persistence.Database, error) {
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), slowQueryThreshold)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		return nil, err
	}

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.LogFullSQL = cfg.App.Env == "development"
	if cfg.Database.Driver == config.DriverSQLite {
		dbTracing.DBSystem = "sqlite"
	}
	if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to register database tracing: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("Database schema migrated")
	}
	return db, nil
}
