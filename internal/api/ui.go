package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/apperr"
	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/session"
	"github.com/culina-app/backend/internal/types"
)

// SessionHandler drives the UI state machine: view navigation, the global
// search box, the drawer, the collection filters and the recipe modal.
type SessionHandler struct {
	session *session.Session
	store   *service.RecipeStore
	logger  *zap.Logger
}

func NewSessionHandler(sess *session.Session, store *service.RecipeStore, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{session: sess, store: store, logger: logger}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	s := router.Group("/session")
	{
		s.GET("", h.GetState)
		s.POST("/navigate", h.Navigate)
		s.POST("/search", h.Search)
		s.POST("/drawer", h.Drawer)
		s.POST("/filters", h.Filters)
		s.POST("/modal/create", h.ModalCreate)
		s.POST("/modal/edit", h.ModalEdit)
		s.POST("/modal/suggestion", h.ModalSuggestion)
		s.POST("/modal/close", h.ModalClose)
	}
}

// respondState returns the session snapshot plus the recipes currently
// visible under its criteria, so the client can re-render from one response.
func (h *SessionHandler) respondState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":   h.session.Snapshot(),
		"visible": h.session.VisibleRecipes(h.store.Recipes()),
	})
}

func (h *SessionHandler) GetState(c *gin.Context) {
	h.respondState(c)
}

func (h *SessionHandler) Navigate(c *gin.Context) {
	var req struct {
		View session.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.session.Navigate(req.View); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondState(c)
}

// Search sets the global query. Entering a non-empty query outside the
// collection view also navigates there.
func (h *SessionHandler) Search(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.SetSearch(req.Query)
	h.respondState(c)
}

func (h *SessionHandler) Drawer(c *gin.Context) {
	var req struct {
		Open *bool `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.SetDrawer(*req.Open)
	h.respondState(c)
}

func (h *SessionHandler) Filters(c *gin.Context) {
	var req struct {
		MaxTime  *int   `json:"maxTime" binding:"omitempty,min=1"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.session.SetFilters(req.MaxTime, types.Category(req.Category)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondState(c)
}

func (h *SessionHandler) ModalCreate(c *gin.Context) {
	h.session.OpenCreateModal()
	h.respondState(c)
}

// ModalEdit opens the modal pre-filled with an existing recipe.
func (h *SessionHandler) ModalEdit(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, ok := h.store.Get(req.ID)
	if !ok {
		respondError(c, h.logger, apperr.ErrNotFound)
		return
	}
	h.session.OpenEditModal(rec)
	h.respondState(c)
}

// ModalSuggestion opens the modal from a pantry suggestion, with the AI tab
// active and the dish name as the generation prompt.
func (h *SessionHandler) ModalSuggestion(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.OpenSuggestionModal(req.Name)
	h.respondState(c)
}

func (h *SessionHandler) ModalClose(c *gin.Context) {
	h.session.CloseModal()
	h.respondState(c)
}
