// Package session holds the per-session UI state: which view is active, the
// global search and filter criteria, the drawer, the create/edit modal and
// the ephemeral pantry suggestions. It is an explicit object handed to its
// consumers rather than ambient package state.
package session

import (
	"fmt"
	"sync"

	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/types"
)

// View identifies one of the four mutually exclusive top-level views.
type View string

const (
	ViewCollection View = "collection"
	ViewPantry     View = "pantry"
	ViewNotebook   View = "notebook"
	ViewLibrary    View = "library"
)

// ValidView reports whether v names a known view.
func ValidView(v View) bool {
	switch v {
	case ViewCollection, ViewPantry, ViewNotebook, ViewLibrary:
		return true
	}
	return false
}

// ModalTab selects which tab of the recipe modal is active.
type ModalTab string

const (
	TabManual ModalTab = "manual"
	TabAI     ModalTab = "ai"
)

// Modal describes the create/edit modal. The modal is orthogonal to the
// active view; what it is pre-filled with depends on how it was opened.
type Modal struct {
	Open        bool          `json:"open"`
	Tab         ModalTab      `json:"tab"`
	Editing     *types.Recipe `json:"editing,omitempty"`
	AIPrompt    string        `json:"aiPrompt,omitempty"`
	AIAvailable bool          `json:"aiAvailable"`
}

// State is a serializable snapshot of the whole session.
type State struct {
	View           View                     `json:"view"`
	DrawerOpen     bool                     `json:"drawerOpen"`
	SearchQuery    string                   `json:"searchQuery"`
	TimeFilter     *int                     `json:"timeFilter,omitempty"`
	CategoryFilter types.Category           `json:"categoryFilter"`
	Modal          Modal                    `json:"modal"`
	Suggestions    []types.RecipeSuggestion `json:"suggestions,omitempty"`
}

// Session is the mutable state machine. One Session is constructed per
// application session; handlers share it and calls are safe for concurrent
// use.
type Session struct {
	mu    sync.Mutex
	state State
}

// New returns a session in its initial state: collection view, no filters,
// modal closed.
func New() *Session {
	return &Session{state: State{
		View:           ViewCollection,
		CategoryFilter: types.CategoryAll,
		Modal:          Modal{Tab: TabManual, AIAvailable: true},
	}}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Navigate switches the active view. Any view can transition to any other.
// Navigating closes the drawer, and leaving the pantry discards its
// suggestions.
func (s *Session) Navigate(v View) error {
	if !ValidView(v) {
		return fmt.Errorf("unknown view %q", v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.View == ViewPantry && v != ViewPantry {
		s.state.Suggestions = nil
	}
	s.state.View = v
	s.state.DrawerOpen = false
	return nil
}

// SetSearch updates the global search query. A search gesture implies intent
// to see results, so a non-empty query entered outside the collection view
// routes there.
func (s *Session) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SearchQuery = query
	if query != "" && s.state.View != ViewCollection {
		if s.state.View == ViewPantry {
			s.state.Suggestions = nil
		}
		s.state.View = ViewCollection
	}
}

// SetDrawer opens or closes the navigation drawer.
func (s *Session) SetDrawer(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DrawerOpen = open
}

// SetFilters replaces the collection view's time and category criteria.
// A nil timeLimit clears the time filter.
func (s *Session) SetFilters(timeLimit *int, category types.Category) error {
	if category != types.CategoryAll && !types.IsValidCategory(string(category)) {
		return fmt.Errorf("unknown category %q", category)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TimeFilter = timeLimit
	s.state.CategoryFilter = category
	return nil
}

// OpenCreateModal opens an empty modal on the manual entry tab.
func (s *Session) OpenCreateModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Modal = Modal{Open: true, Tab: TabManual, AIAvailable: true}
}

// OpenEditModal opens the modal pre-filled with an existing recipe. Editing
// is manual only; the AI tab is not offered.
func (s *Session) OpenEditModal(rec types.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Modal = Modal{Open: true, Tab: TabManual, Editing: &rec}
}

// OpenSuggestionModal opens the modal from a pantry suggestion: the AI tab
// is active and the suggestion's name seeds the generation prompt. This is
// the pantry-to-creation hand-off.
func (s *Session) OpenSuggestionModal(dishName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Modal = Modal{Open: true, Tab: TabAI, AIPrompt: dishName, AIAvailable: true}
}

// CloseModal closes the modal and clears its pre-fill state.
func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Modal = Modal{Tab: TabManual, AIAvailable: true}
}

// SetSuggestions records the latest pantry results, replacing any previous
// ones. Suggestions are never persisted.
func (s *Session) SetSuggestions(suggestions []types.RecipeSuggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Suggestions = suggestions
}

// VisibleRecipes applies the session's search and filter criteria to a
// recipe collection.
func (s *Session) VisibleRecipes(recipes []types.Recipe) []types.Recipe {
	s.mu.Lock()
	query := s.state.SearchQuery
	timeLimit := s.state.TimeFilter
	category := s.state.CategoryFilter
	s.mu.Unlock()
	return service.FilterRecipes(recipes, query, timeLimit, category)
}
