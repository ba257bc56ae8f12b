package database

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/config"
)

// MigrationManager handles database migrations
type MigrationManager struct {
	cfg    config.DatabaseConfig
	logger log.Logger
}

// NewMigrationManager creates a migration manager reading cfg.MigrationsPath
func NewMigrationManager(cfg config.DatabaseConfig, logger log.Logger) *MigrationManager {
	return &MigrationManager{cfg: cfg, logger: logger}
}

// Up runs all up migrations
func (m *MigrationManager) Up() error {
	migration, err := m.createMigrationInstance()
	if err != nil {
		return err
	}
	defer migration.Close()

	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run up migrations: %w", err)
	}

	level.Info(m.logger).Log("msg", "database migrations completed", "path", m.cfg.MigrationsPath)
	return nil
}

// sourceURL is the golang-migrate file source for the configured directory
func (m *MigrationManager) sourceURL() (string, error) {
	path, err := filepath.Abs(m.cfg.MigrationsPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	return "file://" + filepath.ToSlash(path), nil
}

// createMigrationInstance opens a dedicated connection; closing the
// migration closes it without touching the main pool.
func (m *MigrationManager) createMigrationInstance() (*migrate.Migrate, error) {
	source, err := m.sourceURL()
	if err != nil {
		return nil, err
	}

	migrationDB, err := sql.Open("postgres", m.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration database connection: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	migration, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return migration, nil
}

// EnsureDatabase creates the database if it doesn't exist
func EnsureDatabase(cfg config.DatabaseConfig, logger log.Logger) error {
	db, err := sql.Open("postgres", cfg.MaintenanceDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	query := "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1)"
	if err := db.QueryRow(query, cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		level.Debug(logger).Log("msg", "database already exists", "db", cfg.DBName)
		return nil
	}

	level.Info(logger).Log("msg", "creating database", "db", cfg.DBName)
	if _, err := db.Exec("CREATE DATABASE " + quoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

// quoteIdentifier quotes a database name for DDL, which takes no bind parameters
func quoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}
