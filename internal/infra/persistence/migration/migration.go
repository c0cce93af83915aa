// Package migration applies the embedded SQL schema migrations with golang-migrate.
package migration

import (
	"context"
	"embed"
	"log/slog"

	"grocery/config"
	"grocery/internal/domain/lifecycle"
	"grocery/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// Register runs pending migrations on start when migration.autoMigrate is enabled.
func Register(params Params) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			version, err := Up(ctx, params.DB)
			if err != nil {
				return err
			}

			params.Logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)))

			return nil
		},
	})
}

// Up applies all pending migrations on a dedicated connection and returns the resulting schema version.
func Up(ctx context.Context, db *gorm.DB) (uint, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	// The postgres driver closes what it is given, so it gets its own connection.
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to acquire migration connection")
	}
	defer conn.Close()

	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		return 0, errors.Wrap(err, "failed to create migrate postgres driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, errors.Wrap(err, "failed to create iofs driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create migrate instance")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, errors.Wrap(err, "failed to apply migrations")
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, errors.Wrap(err, "failed to read migration version")
	}

	return version, nil
}
