package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/storage"
	"github.com/culina-app/backend/internal/types"
)

// NotebookStore is the notebook counterpart of RecipeStore: an in-memory
// copy refreshed from the gateway after every mutation. Entries are only
// created and deleted, never updated.
type NotebookStore struct {
	gateway *storage.Gateway
	logger  *zap.Logger

	mu      sync.RWMutex
	entries []types.NotebookEntry
	loading bool
}

// NewNotebookStore creates an empty store. Call Load to populate it.
func NewNotebookStore(gateway *storage.Gateway, logger *zap.Logger) *NotebookStore {
	return &NotebookStore{gateway: gateway, logger: logger}
}

// Load refreshes the in-memory entries from the gateway, keeping the
// previous state on failure.
func (s *NotebookStore) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	entries, err := s.gateway.LoadNotebookEntries(ctx)
	if err != nil {
		s.logger.Error("failed to load notebook", zap.Error(err))
		return err
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Create persists a new entry and reloads.
func (s *NotebookStore) Create(ctx context.Context, form types.NotebookEntryForm) (types.NotebookEntry, error) {
	entry, err := s.gateway.CreateNotebookEntry(ctx, form)
	if err != nil {
		return types.NotebookEntry{}, err
	}
	if err := s.Load(ctx); err != nil {
		return types.NotebookEntry{}, err
	}
	return entry, nil
}

// Delete removes an entry by id and reloads. Unknown ids are a no-op.
func (s *NotebookStore) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteNotebookEntry(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Entries returns a copy of the current in-memory entries.
func (s *NotebookStore) Entries() []types.NotebookEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.NotebookEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IsLoading reports whether a reload is in flight.
func (s *NotebookStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *NotebookStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
