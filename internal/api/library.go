package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culina-app/backend/internal/service"
)

// LibraryHandler serves the static book catalog.
type LibraryHandler struct{}

func NewLibraryHandler() *LibraryHandler {
	return &LibraryHandler{}
}

func (h *LibraryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/library/books", h.ListBooks)
}

func (h *LibraryHandler) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": service.LibraryBooks()})
}
