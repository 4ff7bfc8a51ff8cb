package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culina-app/backend/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv, err := New(&config.Config{
		ServerPort:     "0",
		StorageBackend: config.BackendFile,
		DataDir:        t.TempDir(),
		GeminiModel:    "gemini-2.5-flash",
	}, zap.NewNop())
	require.NoError(t, err)
	return srv
}

func TestServerServesHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestServerSeedsCollectionsAtStartup(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/recipes", "/api/v1/notebook"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		srv.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEqual(t, "[]", w.Body.String(), path)
	}
}
