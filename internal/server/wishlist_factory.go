package server

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"arcade-roulette-service/internal/config"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/wishlist"
)

// wishlistFactory opens the configured backend, falling back to memory on failure.
type wishlistFactory struct {
	logger    *slog.Logger
	openRedis func(cfg config.WishlistConfig) (wishlist.Backend, error)
	openSQL   func(dsn string) (wishlist.Backend, error)
}

func newWishlistFactory(logger *slog.Logger) wishlistFactory {
	return wishlistFactory{
		logger:    logger,
		openRedis: dialRedis,
		openSQL:   openSQLite,
	}
}

func (f wishlistFactory) open(cfg config.WishlistConfig) wishlist.Backend {
	backend, err := f.openConfigured(cfg)
	if err != nil {
		logging.Warn(f.logger, "wishlist backend unavailable, using memory",
			slog.String(logging.FieldBackend, cfg.Backend),
			slog.Any("error", err),
		)
		return wishlist.NewMemoryBackend()
	}
	logging.Info(f.logger, "wishlist backend ready", slog.String(logging.FieldBackend, backend.Name()))
	return backend
}

func (f wishlistFactory) openConfigured(cfg config.WishlistConfig) (wishlist.Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return wishlist.NewMemoryBackend(), nil
	case config.BackendRedis:
		return f.openRedis(cfg)
	case config.BackendSQLite:
		return f.openSQL(cfg.SQLiteDSN)
	default:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, err
		}
		return wishlist.NewFileBackend(cfg.Dir), nil
	}
}

func dialRedis(cfg config.WishlistConfig) (wishlist.Backend, error) {
	rb, err := wishlist.NewRedisBackend(cfg.RedisURL, cfg.RedisPrefix, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if err := rb.Ping(context.Background()); err != nil {
		_ = rb.Close()
		return nil, err
	}
	return rb, nil
}

func openSQLite(dsn string) (wishlist.Backend, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, err
		}
	}
	return wishlist.OpenSQLite(dsn)
}
