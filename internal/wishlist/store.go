package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/metrics"
)

// Store is the persisted list of saved game ids.
type Store interface {
	List(ctx context.Context) []string
	Save(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	IsSaved(ctx context.Context, id string) bool
}

// ListStore keeps the saved ids as one JSON array under Key.
// Mutations are read-modify-write and serialised by mu.
type ListStore struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewListStore wraps backend. logger and recorder may be nil.
func NewListStore(backend Backend, logger *slog.Logger, recorder *metrics.Recorder) *ListStore {
	return &ListStore{backend: backend, logger: logger, metrics: recorder}
}

// Backend exposes the underlying key/value store.
func (s *ListStore) Backend() Backend {
	return s.backend
}

// List returns saved ids in insertion order. Unreadable or corrupt data reads as empty.
func (s *ListStore) List(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, _ := s.read(ctx)
	return ids
}

func (s *ListStore) IsSaved(ctx context.Context, id string) bool {
	return slices.Contains(s.List(ctx), id)
}

// Save appends id if absent. Saving an already saved id is a no-op.
// A backend read error aborts the save so the stored set is never replaced
// by a partial one; corrupt data is overwritten.
func (s *ListStore) Save(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.read(ctx)
	if err != nil {
		s.metrics.RecordWishlistOp(metrics.OpSave, metrics.ResultError)
		return err
	}
	if slices.Contains(ids, id) {
		s.metrics.RecordWishlistOp(metrics.OpSave, metrics.ResultNoop)
		return nil
	}
	if err := s.write(ctx, append(ids, id)); err != nil {
		s.metrics.RecordWishlistOp(metrics.OpSave, metrics.ResultError)
		logging.Error(s.logger, "wishlist save failed", err, logging.FieldGameID, id, logging.FieldBackend, s.backend.Name())
		return err
	}
	s.metrics.RecordWishlistOp(metrics.OpSave, metrics.ResultOK)
	return nil
}

// Remove drops id. Removing an id that is not saved writes nothing.
func (s *ListStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.read(ctx)
	if err != nil {
		s.metrics.RecordWishlistOp(metrics.OpRemove, metrics.ResultError)
		return err
	}
	idx := slices.Index(ids, id)
	if idx < 0 {
		s.metrics.RecordWishlistOp(metrics.OpRemove, metrics.ResultNoop)
		return nil
	}
	if err := s.write(ctx, slices.Delete(ids, idx, idx+1)); err != nil {
		s.metrics.RecordWishlistOp(metrics.OpRemove, metrics.ResultError)
		logging.Error(s.logger, "wishlist remove failed", err, logging.FieldGameID, id, logging.FieldBackend, s.backend.Name())
		return err
	}
	s.metrics.RecordWishlistOp(metrics.OpRemove, metrics.ResultOK)
	return nil
}

// read always returns a usable list. The error is set only when the backend
// itself failed, wrapped in ErrPersistenceUnavailable.
func (s *ListStore) read(ctx context.Context) ([]string, error) {
	raw, err := s.backend.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		s.readFailed("wishlist read failed", err)
		return []string{}, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	ids, err := decodeIDs(raw)
	if err != nil {
		s.readFailed("wishlist data corrupt", err)
		return []string{}, nil
	}
	return ids, nil
}

func (s *ListStore) readFailed(msg string, err error) {
	logging.Warn(s.logger, msg, "error", err, logging.FieldBackend, s.backend.Name())
	s.metrics.RecordStoreReadFailure(s.backend.Name())
}

func (s *ListStore) write(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := s.backend.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// decodeIDs accepts only a JSON array of strings. Duplicates are collapsed.
func decodeIDs(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		return nil, errors.New("wishlist value is not an array")
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out, nil
}
