package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/api"
	"github.com/culina-app/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	logger *zap.Logger,
	recipeHandler *api.RecipeHandler,
	pantryHandler *api.PantryHandler,
	notebookHandler *api.NotebookHandler,
	libraryHandler *api.LibraryHandler,
	sessionHandler *api.SessionHandler,
) *gin.Engine {
	api.RegisterValidators()

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	recipeHandler.RegisterRoutes(v1)
	pantryHandler.RegisterRoutes(v1)
	notebookHandler.RegisterRoutes(v1)
	libraryHandler.RegisterRoutes(v1)
	sessionHandler.RegisterRoutes(v1)

	return router
}
