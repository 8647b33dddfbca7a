package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northshoreshop/storefront/internal/catalog"
	"github.com/northshoreshop/storefront/internal/checkout"
	"github.com/northshoreshop/storefront/internal/config"
	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/database"
	"github.com/northshoreshop/storefront/internal/database/postgres"
	"github.com/northshoreshop/storefront/internal/notify"
	"github.com/northshoreshop/storefront/internal/repository"
	"github.com/northshoreshop/storefront/internal/stripeclient"
	"github.com/northshoreshop/storefront/internal/worker"
)

// Provider is the payment provider surface the services need
type Provider interface {
	repository.Catalog
	repository.Checkout
}

// Services holds the wired application services.
// DBPool is nil when the order ledger is disabled.
type Services struct {
	Catalog   catalog.Service
	Checkout  checkout.Service
	Formatter *currency.Formatter
	DBPool    *pgxpool.Pool
}

// InitializeServices builds every service from configuration against the
// Stripe API, connecting the optional order ledger and notifications.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	return InitializeServicesWithProvider(ctx, cfg, stripeclient.New(cfg.StripeSecretKey))
}

// InitializeServicesWithProvider is InitializeServices with an explicit payment provider
func InitializeServicesWithProvider(ctx context.Context, cfg *config.Config, provider Provider) (*Services, error) {
	formatter := currency.NewFormatter(cfg.ZeroDecimalCurrencies)

	svcs := &Services{
		Catalog:   catalog.NewService(provider, cfg.CatalogPageSize, cfg.ShippingRateLimit),
		Formatter: formatter,
	}

	var opts []checkout.Option

	if cfg.DatabaseEnabled() {
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if cfg.DBAutoMigrate {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}
		svcs.DBPool = pool
		opts = append(opts, checkout.WithOrders(postgres.NewOrderRepository(pool)))
		slog.Info(LogMsgOrderLedgerEnabled, "db_host", cfg.DBHost, "db_name", cfg.DBName)
	} else {
		slog.Info(LogMsgOrderLedgerDisabled)
	}

	if cfg.NotificationsEnabled() {
		notifier, err := notify.NewDiscordNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken, formatter)
		if err != nil {
			svcs.closeDB()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		pool := worker.NewPool(cfg.NotifyWorkers, cfg.NotifyQueueSize, NotifyJobTimeout)
		pool.Start()
		opts = append(opts, checkout.WithNotifier(notifier, pool))
		slog.Info(LogMsgNotificationsEnabled, "workers", cfg.NotifyWorkers, "queue_size", cfg.NotifyQueueSize)
	} else {
		slog.Info(LogMsgNotificationsDisabled)
	}

	svcs.Checkout = checkout.NewService(provider, checkout.Config{
		AllowedCountries: cfg.ShippingCountries,
		CacheSize:        cfg.SessionCacheSize,
		CacheTTL:         cfg.SessionCacheTTL,
	}, opts...)

	return svcs, nil
}

// ReadinessPool returns the pool readiness checks should ping, or nil when
// the order ledger is disabled
func (s *Services) ReadinessPool() database.Pool {
	if s.DBPool == nil {
		return nil
	}
	return s.DBPool
}

func (s *Services) closeDB() {
	if s.DBPool != nil {
		s.DBPool.Close()
		s.DBPool = nil
	}
}
