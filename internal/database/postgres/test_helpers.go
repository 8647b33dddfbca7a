package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/northshoreshop/storefront/internal/database"
)

// startTestDatabase runs a disposable postgres container with migrations
// applied. It returns a nil pool when Docker is unavailable.
func startTestDatabase(ctx context.Context) (pool *pgxpool.Pool, terminate func(), err error) {
	terminate = func() {}

	defer func() {
		if r := recover(); r != nil {
			pool, err = nil, fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		TestPostgresImage,
		postgres.WithDatabase(TestDatabaseName),
		postgres.WithUsername(TestDatabaseUser),
		postgres.WithPassword(TestDatabasePassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, terminate, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate = func() { _ = container.Terminate(ctx) }

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, terminate, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err = database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		return nil, terminate, err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, terminate, err
	}

	closePool := pool
	stop := terminate
	terminate = func() {
		closePool.Close()
		stop()
	}
	return pool, terminate, nil
}
