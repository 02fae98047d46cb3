package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/migrations"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authshell/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded client migrations. Already applied
// versions are skipped, so calling it on every start is safe.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite database at dsn and brings its schema up
// to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenStorage returns the durable storage selected by cfg together with a
// function releasing its resources.
func OpenStorage(ctx context.Context, cfg *config.Config) (storage.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return storage.NewMemoryRepository(), func() error { return nil }, nil
	case config.StorageSQLite:
		if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
			return nil, nil, err
		}
		db, err := InitDatabase(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLiteRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
