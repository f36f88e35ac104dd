package wishlist

import "context"

// Key is the single storage key holding the saved id list.
const Key = "arcade_roulette_saved"

// Backend is a string key/value store. Get returns ErrNotFound for a missing key.
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
