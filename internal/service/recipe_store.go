package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/storage"
	"github.com/culina-app/backend/internal/types"
)

// RecipeStore holds the authoritative in-memory copy of the recipe
// collection. Every mutation goes through the gateway and is followed by an
// unconditional full reload, so after any completed mutation the in-memory
// state matches what is persisted. There is no optimistic patching.
type RecipeStore struct {
	gateway *storage.Gateway
	logger  *zap.Logger

	mu      sync.RWMutex
	recipes []types.Recipe
	loading bool
}

// NewRecipeStore creates an empty store. Call Load to populate it.
func NewRecipeStore(gateway *storage.Gateway, logger *zap.Logger) *RecipeStore {
	return &RecipeStore{gateway: gateway, logger: logger}
}

// Load refreshes the in-memory collection from the gateway. On failure the
// previous collection is kept; callers see the last successfully loaded
// state. Overlapping loads are allowed; the one finishing last wins.
func (s *RecipeStore) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	recipes, err := s.gateway.LoadRecipes(ctx)
	if err != nil {
		s.logger.Error("failed to load recipes", zap.Error(err))
		return err
	}
	s.mu.Lock()
	s.recipes = recipes
	s.mu.Unlock()
	return nil
}

// Create persists a new recipe and reloads the collection.
func (s *RecipeStore) Create(ctx context.Context, form types.RecipeFormData) (types.Recipe, error) {
	rec, err := s.gateway.CreateRecipe(ctx, form)
	if err != nil {
		return types.Recipe{}, err
	}
	if err := s.Load(ctx); err != nil {
		return types.Recipe{}, err
	}
	return rec, nil
}

// Update replaces an existing recipe and reloads. An unknown id leaves the
// collection untouched and returns nil, mirroring the gateway contract.
func (s *RecipeStore) Update(ctx context.Context, rec types.Recipe) error {
	if err := s.gateway.UpdateRecipe(ctx, rec); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete removes a recipe by id and reloads. Unknown ids are a no-op.
func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Recipes returns a copy of the current in-memory collection.
func (s *RecipeStore) Recipes() []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Get returns the in-memory recipe with the given id, if present.
func (s *RecipeStore) Get(id string) (types.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}

// IsLoading reports whether a reload is in flight, for the UI's loading
// indicator.
func (s *RecipeStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *RecipeStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
