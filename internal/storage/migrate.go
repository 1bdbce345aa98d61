package storage

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationResult reports the schema version before and after a migration run.
type MigrationResult struct {
	PreviousVersion uint
	CurrentVersion  uint
	Dirty           bool
}

// Migrate applies every pending up migration. It opens its own connection
// because closing the migrate instance closes the database it was given.
func Migrate(dsn string) (*MigrationResult, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, err
	}
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		db.Close()
		return nil, err
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	defer m.Close()

	result := &MigrationResult{}
	result.PreviousVersion, _, err = currentVersion(m)
	if err != nil {
		return nil, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}
	result.CurrentVersion, result.Dirty, err = currentVersion(m)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func currentVersion(m *migrate.Migrate) (uint, bool, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
