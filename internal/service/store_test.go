package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/storage"
	"github.com/culina-app/backend/internal/types"
)

// flakyKV wraps a file store and can be switched to fail every read, for
// exercising the keep-previous-state behavior.
type flakyKV struct {
	inner *storage.FileKV
	fail  bool
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.fail {
		return nil, errors.New("backend unavailable")
	}
	return f.inner.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key string, value []byte) error {
	if f.fail {
		return errors.New("backend unavailable")
	}
	return f.inner.Set(ctx, key, value)
}

func (f *flakyKV) Delete(ctx context.Context, key string) error {
	return f.inner.Delete(ctx, key)
}

func newTestStores(t *testing.T) (*RecipeStore, *NotebookStore, *storage.Gateway, *flakyKV) {
	t.Helper()
	inner, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	kv := &flakyKV{inner: inner}
	gateway := storage.NewGateway(kv, zap.NewNop(), 0)
	return NewRecipeStore(gateway, zap.NewNop()), NewNotebookStore(gateway, zap.NewNop()), gateway, kv
}

func TestRecipeStoreMutationsStayInSyncWithStorage(t *testing.T) {
	store, _, gateway, _ := newTestStores(t)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	created, err := store.Create(ctx, types.RecipeFormData{
		Name:        "Laphet Thoke",
		Ingredients: "fermented tea\npeanuts",
		Steps:       "toss everything",
		CookingTime: 10,
		Category:    string(types.CategoryTaang),
	})
	require.NoError(t, err)

	// After any completed mutation the in-memory copy matches storage.
	persisted, err := gateway.LoadRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, persisted, store.Recipes())
	assert.Equal(t, created.ID, store.Recipes()[0].ID)

	got, ok := store.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Laphet Thoke", got.Name)

	created.Name = "Tea Leaf Salad"
	require.NoError(t, store.Update(ctx, created))
	got, ok = store.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Tea Leaf Salad", got.Name)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, ok = store.Get(created.ID)
	assert.False(t, ok)

	persisted, err = gateway.LoadRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, persisted, store.Recipes())
}

func TestRecipeStoreUpdateUnknownIDLeavesCollectionUntouched(t *testing.T) {
	store, _, _, _ := newTestStores(t)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	before := store.Recipes()
	require.NoError(t, store.Update(ctx, types.Recipe{ID: "no-such-id", Name: "ghost"}))
	assert.Equal(t, before, store.Recipes())
}

func TestRecipeStoreKeepsStateWhenLoadFails(t *testing.T) {
	store, _, _, kv := newTestStores(t)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	before := store.Recipes()
	require.NotEmpty(t, before)

	kv.fail = true
	assert.Error(t, store.Load(ctx))
	assert.Equal(t, before, store.Recipes(), "failed reload must keep the previous collection")
	assert.False(t, store.IsLoading())
}

func TestRecipeStoreRecipesReturnsACopy(t *testing.T) {
	store, _, _, _ := newTestStores(t)
	require.NoError(t, store.Load(context.Background()))

	got := store.Recipes()
	require.NotEmpty(t, got)
	got[0].Name = "mutated"
	assert.NotEqual(t, "mutated", store.Recipes()[0].Name)
}

func TestNotebookStoreLifecycle(t *testing.T) {
	_, store, gateway, _ := newTestStores(t)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	seeded := store.Entries()
	require.NotEmpty(t, seeded)

	entry, err := store.Create(ctx, types.NotebookEntryForm{
		Title:   "Char on the wok",
		Source:  "Street vendor",
		Content: "Let the rice sit untouched for the last minute.",
	})
	require.NoError(t, err)
	require.Len(t, store.Entries(), len(seeded)+1)
	assert.Equal(t, entry.ID, store.Entries()[0].ID)

	persisted, err := gateway.LoadNotebookEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, persisted, store.Entries())

	require.NoError(t, store.Delete(ctx, entry.ID))
	assert.Len(t, store.Entries(), len(seeded))
}
