package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/session"
)

// PantryHandler turns a list of available ingredients into dish suggestions.
type PantryHandler struct {
	ai      *service.AIService
	session *session.Session
	logger  *zap.Logger
}

func NewPantryHandler(ai *service.AIService, sess *session.Session, logger *zap.Logger) *PantryHandler {
	return &PantryHandler{ai: ai, session: sess, logger: logger}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/pantry/suggest", h.Suggest)
}

// Suggest asks the AI gateway for dishes that can be made from the given
// ingredients. The results replace any previous suggestions in the session;
// they are never persisted.
func (h *PantryHandler) Suggest(c *gin.Context) {
	var req struct {
		Ingredients string `json:"ingredients" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := h.ai.SuggestDishes(c.Request.Context(), req.Ingredients)
	if err != nil {
		h.session.SetSuggestions(nil)
		respondError(c, h.logger, err)
		return
	}

	h.session.SetSuggestions(suggestions)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
