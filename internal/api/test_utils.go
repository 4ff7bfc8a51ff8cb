package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/culina-app/backend/config"
	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/session"
	"github.com/culina-app/backend/internal/storage"
)

// testApp is a fully wired application over a temporary file store, with the
// generation API pointed at an optional stub server.
type testApp struct {
	router   *gin.Engine
	recipes  *service.RecipeStore
	notebook *service.NotebookStore
	session  *session.Session
}

// newTestApp builds the app for handler tests. aiHandler serves the stubbed
// generation endpoint; pass nil to leave the API key unset so generation
// fails with the missing-credential error.
func newTestApp(t *testing.T, aiHandler http.HandlerFunc) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	logger := zap.NewNop()
	gateway := storage.NewGateway(kv, logger, 0)

	recipes := service.NewRecipeStore(gateway, logger)
	notebook := service.NewNotebookStore(gateway, logger)
	require.NoError(t, recipes.Load(context.Background()))
	require.NoError(t, notebook.Load(context.Background()))

	cfg := &config.Config{GeminiModel: "gemini-2.5-flash"}
	if aiHandler != nil {
		server := httptest.NewServer(aiHandler)
		t.Cleanup(server.Close)
		cfg.GeminiAPIKey = "test-key"
		cfg.GeminiAPIURL = server.URL
	}
	ai := service.NewAIService(cfg, logger)
	sess := session.New()

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(recipes, ai, logger).RegisterRoutes(v1)
	NewPantryHandler(ai, sess, logger).RegisterRoutes(v1)
	NewNotebookHandler(notebook, logger).RegisterRoutes(v1)
	NewLibraryHandler().RegisterRoutes(v1)
	NewSessionHandler(sess, recipes, logger).RegisterRoutes(v1)

	return &testApp{router: router, recipes: recipes, notebook: notebook, session: sess}
}

// do performs a JSON request against the test router and decodes the reply.
func (a *testApp) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

// stubGemini returns a handler that always replies with the given candidate
// text, wrapped the way the generateContent endpoint wraps it.
func stubGemini(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
