package wishlist

import "errors"

// ErrPersistenceUnavailable wraps every failed write to the backing store.
var ErrPersistenceUnavailable = errors.New("wishlist persistence unavailable")

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("wishlist key not found")
