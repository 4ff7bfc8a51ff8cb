package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/types"
)

// NotebookHandler serves the free-text kitchen notes.
type NotebookHandler struct {
	store  *service.NotebookStore
	logger *zap.Logger
}

func NewNotebookHandler(store *service.NotebookStore, logger *zap.Logger) *NotebookHandler {
	return &NotebookHandler{store: store, logger: logger}
}

func (h *NotebookHandler) RegisterRoutes(router *gin.RouterGroup) {
	notebook := router.Group("/notebook")
	{
		notebook.GET("", h.ListEntries)
		notebook.POST("", h.CreateEntry)
		notebook.DELETE("/:id", h.DeleteEntry)
	}
}

func (h *NotebookHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.store.Entries(),
		"loading": h.store.IsLoading(),
	})
}

func (h *NotebookHandler) CreateEntry(c *gin.Context) {
	var form types.NotebookEntryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

func (h *NotebookHandler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted", "id": id})
}
