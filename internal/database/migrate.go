package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/northshoreshop/storefront/internal/logger"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations returns the embedded goose migrations rooted at their directory
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, MigrationsDir)
	if err != nil {
		// The directory is compiled in; a failure here is a build defect.
		panic(err)
	}
	return sub
}

func newProvider(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return provider, db.Close, nil
}

// Migrate applies every pending migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// MigrationState describes one migration's status
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

// MigrationStatus reports which migrations are applied
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]MigrationState, error) {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	states := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		states = append(states, MigrationState{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return states, nil
}

// Rollback reverts the most recently applied migration
func Rollback(ctx context.Context, pool *pgxpool.Pool) error {
	provider, closeDB, err := newProvider(pool)
	if err != nil {
		return err
	}
	defer closeDB()

	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	if result != nil && result.Source != nil {
		logger.FromContext(ctx).Info(LogMsgMigrationRolledBack, "version", result.Source.Version)
	}
	return nil
}
