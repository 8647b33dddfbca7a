package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Payment provider
	StripeSecretKey       string
	CatalogPageSize       int
	ShippingRateLimit     int
	ShippingCountries     []string
	ZeroDecimalCurrencies []string
	PublicBaseURL         string

	// Checkout session cache
	SessionCacheSize int
	SessionCacheTTL  time.Duration

	// Order ledger (optional, enabled when DB_HOST is set)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	// Order notifications (optional)
	DiscordWebhookID    string
	DiscordWebhookToken string
	NotifyWorkers       int
	NotifyQueueSize     int

	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		StripeSecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
		CatalogPageSize:       getEnvAsInt("CATALOG_PAGE_SIZE", domain.MaxProviderPageSize),
		ShippingRateLimit:     getEnvAsInt("SHIPPING_RATE_LIMIT", DefaultShippingRateLimit),
		ShippingCountries:     getEnvAsList("SHIPPING_COUNTRIES", DefaultShippingCountries),
		ZeroDecimalCurrencies: getEnvAsList("ZERO_DECIMAL_CURRENCIES", currency.DefaultZeroDecimalCurrencies),
		PublicBaseURL:         strings.TrimRight(getEnv("PUBLIC_BASE_URL", DefaultPublicBaseURL), "/"),

		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionCacheTTL:  getEnvAsDuration("SESSION_CACHE_TTL", DefaultSessionCacheTTL),

		DBUser:            getEnv("DB_USER", DefaultDBUser),
		DBPassword:        getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:            getEnv("DB_HOST", ""),
		DBPort:            getEnv("DB_PORT", DefaultDBPort),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),

		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),
		NotifyWorkers:       getEnvAsInt("NOTIFY_WORKERS", DefaultNotifyWorkers),
		NotifyQueueSize:     getEnvAsInt("NOTIFY_QUEUE_SIZE", DefaultNotifyQueueSize),

		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES", nil),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY environment variable must be set")
	}

	if cfg.CatalogPageSize < 1 || cfg.CatalogPageSize > domain.MaxProviderPageSize {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be between 1 and %d, got %d", domain.MaxProviderPageSize, cfg.CatalogPageSize)
	}

	return cfg, nil
}

// DatabaseEnabled reports whether the order ledger should be used
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// NotificationsEnabled reports whether order notifications should be sent
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
