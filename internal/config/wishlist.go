package config

import "strings"

// WishlistConfig selects and configures the wishlist backend.
type WishlistConfig struct {
	Backend     string
	Dir         string
	RedisURL    string
	RedisPrefix string
	SQLiteDSN   string
	Timeout     Duration
}

func loadWishlist(s values) WishlistConfig {
	backend := strings.ToLower(s.stringOrDefault("wishlist.backend", defaultWishBackend))
	switch backend {
	case BackendFile, BackendMemory, BackendRedis, BackendSQLite:
	default:
		backend = defaultWishBackend
	}
	return WishlistConfig{
		Backend:     backend,
		Dir:         s.stringOrDefault("wishlist.dir", defaultWishDir),
		RedisURL:    s.stringOrDefault("wishlist.redis_url", defaultWishRedisURL),
		RedisPrefix: s.stringOrDefault("wishlist.redis_prefix", ""),
		SQLiteDSN:   s.stringOrDefault("wishlist.sqlite_dsn", defaultWishSQLiteDSN),
		Timeout:     s.durationOrDefault("wishlist.timeout", defaultWishTimeout),
	}
}
