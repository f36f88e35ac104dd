package config

import "time"

const (
	envConfigFile = "ROULETTE_CONFIG"

	envPort          = "PORT"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envLogFile       = "LOG_FILE"
	envLogMaxSize    = "LOG_MAX_SIZE_MB"
	envLogMaxBackups = "LOG_MAX_BACKUPS"
	envLogMaxAge     = "LOG_MAX_AGE_DAYS"
	envCatalogFile   = "CATALOG_FILE"
	envWishBackend   = "WISHLIST_BACKEND"
	envWishDir       = "WISHLIST_DIR"
	envWishRedisURL  = "WISHLIST_REDIS_URL"
	envWishRedisPfx  = "WISHLIST_REDIS_PREFIX"
	envWishSQLiteDSN = "WISHLIST_SQLITE_DSN"
	envWishTimeout   = "WISHLIST_TIMEOUT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envCompressionOn = "COMPRESSION_ENABLED"

	defaultPort          = "4000"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultLogMaxSize    = 50
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 7
	defaultWishBackend   = BackendFile
	defaultWishDir       = "data/wishlist"
	defaultWishRedisURL  = "redis://localhost:6379/0"
	defaultWishSQLiteDSN = "data/wishlist.db"
	defaultWishTimeout   = 2 * Duration(time.Second)
	defaultMetricsPort   = "9090"
	defaultServiceName   = "arcade-roulette-service"
)

// Wishlist backend names.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// bindings maps config-file keys to their environment variables.
var bindings = map[string]string{
	"port":                  envPort,
	"log.level":             envLogLevel,
	"log.format":            envLogFormat,
	"log.file":              envLogFile,
	"log.max_size_mb":       envLogMaxSize,
	"log.max_backups":       envLogMaxBackups,
	"log.max_age_days":      envLogMaxAge,
	"catalog.file":          envCatalogFile,
	"wishlist.backend":      envWishBackend,
	"wishlist.dir":          envWishDir,
	"wishlist.redis_url":    envWishRedisURL,
	"wishlist.redis_prefix": envWishRedisPfx,
	"wishlist.sqlite_dsn":   envWishSQLiteDSN,
	"wishlist.timeout":      envWishTimeout,
	"metrics.enabled":       envMetricsOn,
	"metrics.port":          envMetricsPort,
	"metrics.otlp_endpoint": envOtelEndpoint,
	"metrics.service_name":  envOtelService,
	"metrics.otlp_insecure": envOtelInsecure,
	"compression.enabled":   envCompressionOn,
}
