// Command setup manages the order ledger schema.
//
// Usage:
//
//	setup up        apply all pending migrations
//	setup status    list migrations and whether they are applied
//	setup down      roll back the most recent migration
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/northshoreshop/storefront/internal/config"
	"github.com/northshoreshop/storefront/internal/database"
	"github.com/northshoreshop/storefront/internal/logger"
)

const setupTimeout = 2 * time.Minute

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Setup failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	subcmd := "up"
	if len(args) > 0 {
		subcmd = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-setup", cfg.Version, cfg.Environment, false))

	if !cfg.DatabaseEnabled() {
		return fmt.Errorf("DB_HOST must be set to manage the order ledger schema")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		return database.Migrate(ctx, pool)
	case "down":
		return database.Rollback(ctx, pool)
	case "status":
		states, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		for _, s := range states {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Path)
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: want up, down or status", subcmd)
	}
}
