package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/types"
)

// Gateway persists the recipe and notebook collections through a KV backend.
// Every write is a whole-collection rewrite: read, mutate in memory, write
// back. There is no merging; racing writers clobber each other at collection
// granularity.
type Gateway struct {
	kv      KV
	logger  *zap.Logger
	latency time.Duration

	now   func() time.Time
	newID func() string
}

// NewGateway wires a gateway over the given backend. latency > 0 adds an
// artificial pause to every operation, matching the simulated delay the
// original demo used to exercise loading states.
func NewGateway(kv KV, logger *zap.Logger, latency time.Duration) *Gateway {
	return &Gateway{
		kv:      kv,
		logger:  logger,
		latency: latency,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (g *Gateway) delay(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LoadRecipes returns the full recipe collection. The first read ever seeds
// storage with the starter set. Records stored without a category come back
// as Other; the stored bytes are left untouched.
func (g *Gateway) LoadRecipes(ctx context.Context) ([]types.Recipe, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	data, err := g.kv.Get(ctx, KeyRecipes)
	if errors.Is(err, ErrKeyNotFound) {
		seeds := seedRecipes()
		if err := g.writeRecipes(ctx, seeds); err != nil {
			return nil, err
		}
		g.logger.Info("seeded recipe collection", zap.Int("count", len(seeds)))
		return seeds, nil
	}
	if err != nil {
		return nil, err
	}
	var recipes []types.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", KeyRecipes, err)
	}
	for i := range recipes {
		if recipes[i].Category == "" {
			recipes[i].Category = types.CategoryOther
		}
	}
	return recipes, nil
}

// CreateRecipe assigns a fresh id and timestamp, prepends the record so the
// collection stays newest-first, persists, and returns the created record.
func (g *Gateway) CreateRecipe(ctx context.Context, form types.RecipeFormData) (types.Recipe, error) {
	recipes, err := g.LoadRecipes(ctx)
	if err != nil {
		return types.Recipe{}, err
	}
	rec := types.Recipe{
		ID:          g.newID(),
		Name:        form.Name,
		Ingredients: types.SplitLines(form.Ingredients),
		Steps:       types.SplitLines(form.Steps),
		CookingTime: form.CookingTime,
		ImageURL:    form.ImageURL,
		Category:    types.Category(form.Category),
		CreatedAt:   g.now().UnixMilli(),
	}
	recipes = append([]types.Recipe{rec}, recipes...)
	if err := g.writeRecipes(ctx, recipes); err != nil {
		return types.Recipe{}, err
	}
	return rec, nil
}

// UpdateRecipe replaces the record with the same id in place, preserving the
// collection order and the original creation time. An unknown id is a silent
// no-op, not an error.
func (g *Gateway) UpdateRecipe(ctx context.Context, rec types.Recipe) error {
	recipes, err := g.LoadRecipes(ctx)
	if err != nil {
		return err
	}
	for i := range recipes {
		if recipes[i].ID == rec.ID {
			rec.CreatedAt = recipes[i].CreatedAt
			recipes[i] = rec
			return g.writeRecipes(ctx, recipes)
		}
	}
	return nil
}

// DeleteRecipe removes the record if present. Unknown ids are a no-op.
func (g *Gateway) DeleteRecipe(ctx context.Context, id string) error {
	recipes, err := g.LoadRecipes(ctx)
	if err != nil {
		return err
	}
	kept := recipes[:0]
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recipes) {
		return nil
	}
	return g.writeRecipes(ctx, kept)
}

func (g *Gateway) writeRecipes(ctx context.Context, recipes []types.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", KeyRecipes, err)
	}
	return g.kv.Set(ctx, KeyRecipes, data)
}

// LoadNotebookEntries returns all notebook entries, seeding the starter
// notes on the first ever read.
func (g *Gateway) LoadNotebookEntries(ctx context.Context) ([]types.NotebookEntry, error) {
	if err := g.delay(ctx); err != nil {
		return nil, err
	}
	data, err := g.kv.Get(ctx, KeyNotebook)
	if errors.Is(err, ErrKeyNotFound) {
		seeds := seedNotebook()
		if err := g.writeNotebook(ctx, seeds); err != nil {
			return nil, err
		}
		g.logger.Info("seeded notebook collection", zap.Int("count", len(seeds)))
		return seeds, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []types.NotebookEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", KeyNotebook, err)
	}
	return entries, nil
}

// CreateNotebookEntry stores a new note, newest first. An empty source
// defaults to "Unknown".
func (g *Gateway) CreateNotebookEntry(ctx context.Context, form types.NotebookEntryForm) (types.NotebookEntry, error) {
	entries, err := g.LoadNotebookEntries(ctx)
	if err != nil {
		return types.NotebookEntry{}, err
	}
	source := form.Source
	if source == "" {
		source = types.DefaultNoteSource
	}
	entry := types.NotebookEntry{
		ID:        g.newID(),
		Title:     form.Title,
		Source:    source,
		Content:   form.Content,
		CreatedAt: g.now().UnixMilli(),
	}
	entries = append([]types.NotebookEntry{entry}, entries...)
	if err := g.writeNotebook(ctx, entries); err != nil {
		return types.NotebookEntry{}, err
	}
	return entry, nil
}

// DeleteNotebookEntry removes the note if present; unknown ids are a no-op.
func (g *Gateway) DeleteNotebookEntry(ctx context.Context, id string) error {
	entries, err := g.LoadNotebookEntries(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return g.writeNotebook(ctx, kept)
}

func (g *Gateway) writeNotebook(ctx context.Context, entries []types.NotebookEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", KeyNotebook, err)
	}
	return g.kv.Set(ctx, KeyNotebook, data)
}
