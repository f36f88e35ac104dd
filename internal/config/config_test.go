package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat || cfg.Log.File != "" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != defaultLogMaxSize || cfg.Log.MaxBackups != defaultLogMaxBackups || cfg.Log.MaxAgeDays != defaultLogMaxAge {
		t.Fatalf("unexpected rotation defaults %+v", cfg.Log)
	}
	if cfg.CatalogFile != "" {
		t.Fatalf("expected built-in catalogue by default, got %s", cfg.CatalogFile)
	}
	if cfg.Wishlist.Backend != BackendFile || cfg.Wishlist.Dir != defaultWishDir {
		t.Fatalf("unexpected wishlist defaults %+v", cfg.Wishlist)
	}
	if cfg.Wishlist.Timeout != defaultWishTimeout {
		t.Fatalf("expected default wishlist timeout, got %s", cfg.Wishlist.Timeout)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if !cfg.CompressionEnabled {
		t.Fatalf("expected compression enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envCatalogFile, "games.yaml")
	t.Setenv(envWishBackend, "Redis")
	t.Setenv(envWishRedisURL, "redis://cache:6379/2")
	t.Setenv(envWishRedisPfx, "roulette:")
	t.Setenv(envWishTimeout, "500ms")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envCompressionOn, "no")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.CatalogFile != "games.yaml" {
		t.Fatalf("expected catalogue file override, got %s", cfg.CatalogFile)
	}
	if cfg.Wishlist.Backend != BackendRedis || cfg.Wishlist.RedisURL != "redis://cache:6379/2" || cfg.Wishlist.RedisPrefix != "roulette:" {
		t.Fatalf("expected redis overrides, got %+v", cfg.Wishlist)
	}
	if cfg.Wishlist.Timeout != 500*time.Millisecond {
		t.Fatalf("expected 500ms timeout, got %s", cfg.Wishlist.Timeout)
	}
	if cfg.Metrics.Enabled || cfg.CompressionEnabled {
		t.Fatalf("expected metrics and compression disabled")
	}
}

func TestLoadUnknownBackendFallsBack(t *testing.T) {
	t.Setenv(envWishBackend, "postgres")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Wishlist.Backend != defaultWishBackend {
		t.Fatalf("expected default backend on unknown value, got %s", cfg.Wishlist.Backend)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envWishTimeout, "not-a-duration")

	cfg, _ := Load()

	if cfg.Wishlist.Timeout != defaultWishTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Wishlist.Timeout)
	}
}

func TestLoadReadsConfigFileUnderEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roulette.yaml")
	body := "port: \"7000\"\nwishlist:\n  backend: sqlite\n  sqlite_dsn: /tmp/w.db\nlog:\n  max_backups: 9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "7100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Port != "7100" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.Wishlist.Backend != BackendSQLite || cfg.Wishlist.SQLiteDSN != "/tmp/w.db" {
		t.Fatalf("expected sqlite settings from file, got %+v", cfg.Wishlist)
	}
	if cfg.Log.MaxBackups != 9 {
		t.Fatalf("expected max backups from file, got %d", cfg.Log.MaxBackups)
	}
}

func TestLoadMissingConfigFileErrors(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLogConfigConversion(t *testing.T) {
	lc := LogConfig{Level: "warn", Format: "json", File: "x.log", MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 3}
	got := lc.Logging("svc", "v1")
	if got.Service != "svc" || got.Version != "v1" || got.File != "x.log" || got.MaxAgeDays != 3 {
		t.Fatalf("unexpected conversion %+v", got)
	}
}
