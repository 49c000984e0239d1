// Package database provides helpers for opening the SQLite connection pool and running migrations.
// This file has two responsibilities:
//  1. Opening a pooled database handle using GORM, configured for concurrent use
//  2. Running the embedded SQL migration files to keep the schema up to date
package database

import (
	"context"
	"embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	// The migrate package reads and applies versioned SQL migration files.
	"github.com/golang-migrate/migrate/v4"
	// sqlite3 is migrate's driver for SQLite; WithInstance lets it reuse our pool.
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	// iofs reads migration files from any fs.FS; here the embedded migrations/ directory,
	// so the binary does not depend on its working directory at runtime.
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MaxOpenConns caps how many connections the pool hands out at once.
// Callers beyond the cap block in database/sql until a connection is returned.
const MaxOpenConns = 5

// busyTimeoutMS makes a connection wait for a competing writer instead of failing
// immediately with SQLITE_BUSY.
const busyTimeoutMS = "5000"

// ParsePath extracts the file path from a database URL.
// "sqlite://data/app.db" and "sqlite:///abs/app.db" yield "data/app.db" and "/abs/app.db";
// a string without a scheme is treated as the path itself.
func ParsePath(databaseURL string) string {
	if _, path, ok := strings.Cut(databaseURL, "://"); ok {
		return path
	}
	return databaseURL
}

// Open produces a ready-to-use pool for the SQLite file named by databaseURL.
//
// The file (and its directory) is created if missing, the journal is switched to
// write-ahead logging so readers are not blocked by a writer, the pool is capped at
// MaxOpenConns, and all pending migrations are applied before Open returns.
//
// An empty URL is a configuration error. Failures to create, connect, or migrate are
// infrastructure errors. Neither is recoverable here; the caller is expected to abort.
func Open(ctx context.Context, databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, apperr.New(apperr.KindConfiguration, "DATABASE_URL cannot be empty")
	}
	path := ParsePath(databaseURL)
	if path == "" {
		return nil, apperr.New(apperr.KindConfiguration, "DATABASE_URL has no file path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.Wrap(apperr.KindInfrastructure, err, "failed to create database directory")
		}
	}

	// gorm.Open takes a dialect and a GORM config and returns the DB handle.
	// GORM's own SQL logging is silenced; request logging happens in the HTTP middleware.
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, err, "failed to create SQLite connection pool")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInfrastructure, err, "failed to create SQLite connection pool")
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)

	fail := func(err error, msg string) (*gorm.DB, error) {
		_ = sqlDB.Close()
		return nil, apperr.Wrap(apperr.KindInfrastructure, err, msg)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fail(err, "failed to connect to SQLite database")
	}

	// journal_mode is stored in the database file, so setting it once covers every
	// connection the pool opens later.
	if err := db.WithContext(ctx).Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		return fail(err, "failed to enable write-ahead logging")
	}

	if _, err := Migrate(db); err != nil {
		return fail(err, "failed to run database migrations")
	}

	return db, nil
}

// dsn builds the go-sqlite3 data source name. _busy_timeout is applied per connection.
func dsn(path string) string {
	return path + "?_busy_timeout=" + busyTimeoutMS
}

// Migrate applies any pending "up" migrations from the embedded migrations/ directory
// and returns the resulting schema version.
// The migrate library tracks which have already run in the schema_migrations table,
// so calling Migrate on an up-to-date database is a no-op.
func Migrate(db *gorm.DB) (uint, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return 0, err
	}

	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return 0, err
	}

	// m.Close is deliberately not called: it would close sqlDB, which the caller still owns.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return 0, err
	}

	// migrate.ErrNoChange is returned when there are no new migrations to run, which is
	// not a real error. Anything else (bad SQL, locked file) stops startup.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, errors.New("schema is dirty after migration")
	}
	return version, nil
}

// Close releases every connection held by the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
