package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adpilot/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version. A dirty schema
// is reported and left for manual repair.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("schema version %d is dirty", from)
	}

	err = mg.Migrate(migrations.Version)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema up to date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Int("to", migrations.Version))
	return nil
}
