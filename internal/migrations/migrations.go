// Package migrations applies the run-history schema before the store opens.
package migrations

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Run migrates the database at dsn up to the latest version. An already
// up-to-date schema is not an error.
func Run(sourceURL, dsn string, log *zap.Logger) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug("run-history schema already current")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("run-history schema migrated")
	return nil
}
