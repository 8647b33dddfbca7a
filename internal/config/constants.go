package config

import "time"

// Defaults for optional configuration
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "storefront"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultShippingRateLimit = 10
	DefaultPublicBaseURL     = "http://localhost:3000"

	DefaultSessionCacheSize = 256
	DefaultSessionCacheTTL  = 5 * time.Minute

	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBPort            = "5432"
	DefaultDBName            = "storefront"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultNotifyWorkers   = 2
	DefaultNotifyQueueSize = 100

	DefaultShutdownTimeout = 15 * time.Second
)

// DefaultShippingCountries are the countries checkout collects shipping addresses for
var DefaultShippingCountries = []string{"US", "CA"}
