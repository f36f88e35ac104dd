package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"arcade-roulette-service/internal/logging"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port               string
	Log                LogConfig
	CatalogFile        string
	Wishlist           WishlistConfig
	Metrics            MetricsConfig
	CompressionEnabled bool
}

// LogConfig controls slog output and optional file rotation.
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logging converts to the logger's own config.
func (c LogConfig) Logging(service, version string) logging.Config {
	return logging.Config{
		Level:      c.Level,
		Format:     c.Format,
		Service:    service,
		Version:    version,
		File:       c.File,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
	}
}

// Load reads configuration from environment variables, layered over the
// optional YAML file named by ROULETTE_CONFIG.
func Load() (Config, error) {
	v := viper.New()
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	if path := strings.TrimSpace(os.Getenv(envConfigFile)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return fromValues(values{v: v}), nil
}

func fromValues(s values) Config {
	return Config{
		Port: s.stringOrDefault("port", defaultPort),
		Log: LogConfig{
			Level:      s.stringOrDefault("log.level", defaultLogLevel),
			Format:     s.stringOrDefault("log.format", defaultLogFormat),
			File:       s.stringOrDefault("log.file", ""),
			MaxSizeMB:  s.intOrDefault("log.max_size_mb", defaultLogMaxSize),
			MaxBackups: s.intOrDefault("log.max_backups", defaultLogMaxBackups),
			MaxAgeDays: s.intOrDefault("log.max_age_days", defaultLogMaxAge),
		},
		CatalogFile:        s.stringOrDefault("catalog.file", ""),
		Wishlist:           loadWishlist(s),
		Metrics:            loadMetrics(s),
		CompressionEnabled: s.boolOrDefault("compression.enabled", true),
	}
}
