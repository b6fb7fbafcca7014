package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/campaign/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database operations
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the configured database (postgres or sqlite) and verifies
// the connection. A nil logger silences GORM.
func NewDatabase(cfg *config.DatabaseConfig, logger gormlogger.Interface) (*Database, error) {
	if logger == nil {
		logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.Path))
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := Open(dialector, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// every connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open wraps a GORM dialector with the settings every repository relies on:
// driver errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, logger gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{DB: db}, nil
}

// sqliteDSN enables foreign keys so association cascades hold on sqlite too
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// Migrate creates or updates the tables of every persistence model.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Transaction executes a function within a database transaction
func (d *Database) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Transaction(fn)
}
