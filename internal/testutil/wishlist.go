package testutil

import (
	"context"
	"errors"

	"arcade-roulette-service/internal/wishlist"
)

// ErrBackendDown is returned by FailingBackend.
var ErrBackendDown = errors.New("backend down")

// FailingBackend fails every write; reads succeed when ReadOK is set.
type FailingBackend struct {
	ReadOK bool
	Value  []byte
	Closed bool
}

func (f *FailingBackend) Name() string { return "failing" }

func (f *FailingBackend) Get(context.Context, string) ([]byte, error) {
	if !f.ReadOK {
		return nil, ErrBackendDown
	}
	if f.Value == nil {
		return nil, wishlist.ErrNotFound
	}
	return f.Value, nil
}

func (f *FailingBackend) Set(context.Context, string, []byte) error {
	return ErrBackendDown
}

func (f *FailingBackend) Close() error {
	f.Closed = true
	return nil
}

// NewMemoryWishlist returns a ListStore over a fresh in-memory backend.
func NewMemoryWishlist() *wishlist.ListStore {
	return wishlist.NewListStore(wishlist.NewMemoryBackend(), nil, nil)
}
