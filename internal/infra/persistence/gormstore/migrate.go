package gormstore

import (
	"context"
	"log/slog"

	"pumpdesk/config"
	"pumpdesk/internal/errors"
	"pumpdesk/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *gorm.DB, driver string, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	dialect := goose.DialectSQLite3
	if driver == config.StorageDriverPostgres {
		dialect = goose.DialectPostgres
	}

	provider, err := goose.NewProvider(dialect, sqlDB, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	for _, result := range results {
		logger.Info("Applied migration",
			slog.String("migration", result.String()),
			slog.Int64("version", result.Source.Version),
		)
	}

	return nil
}
