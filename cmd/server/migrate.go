package main

import (
	"context"
	"time"

	"github.com/campaign/backend/internal/infrastructure/logger"
	"github.com/campaign/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), slowQueryThreshold)
			db, err := persistence.NewDatabase(&cfg.Database, gormLog)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			log.Info("Migration completed",
				zap.String("driver", cfg.Database.Driver),
				zap.String("database", cfg.Database.DBName),
			)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "maximum time the migration may run")
	return cmd
}
