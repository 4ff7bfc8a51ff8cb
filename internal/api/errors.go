package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/apperr"
)

// respondError translates service errors into HTTP responses. Gateway and
// store failures never crash the process; they become visible, non-fatal
// messages. The missing-credential case names the variable to set, since
// that is the most common integration failure.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrMissingAPIKey):
		c.JSON(http.StatusFailedDependency, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrGeneration):
		logger.Warn("generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generation failed. Please try again."})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
