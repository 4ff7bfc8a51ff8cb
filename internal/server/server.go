package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/config"
	"github.com/culina-app/backend/internal/api"
	"github.com/culina-app/backend/internal/router"
	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/session"
	"github.com/culina-app/backend/internal/storage"
)

// Server wires storage, stores, the AI gateway and the session state into an
// HTTP server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New builds the full application from configuration: the storage backend,
// the persistence gateway, the stores (loaded once so the collections are
// seeded before the first request), the session and all handlers.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	kv, err := newKV(cfg, logger)
	if err != nil {
		return nil, err
	}

	gateway := storage.NewGateway(kv, logger, cfg.StorageLatency)
	recipes := service.NewRecipeStore(gateway, logger)
	notebook := service.NewNotebookStore(gateway, logger)
	sess := session.New()
	ai := service.NewAIService(cfg, logger)

	ctx := context.Background()
	if err := recipes.Load(ctx); err != nil {
		return nil, fmt.Errorf("initial recipe load: %w", err)
	}
	if err := notebook.Load(ctx); err != nil {
		return nil, fmt.Errorf("initial notebook load: %w", err)
	}

	if !cfg.HasAPIKey() {
		logger.Warn("no generation API key configured; AI endpoints will fail until GEMINI_API_KEY is set")
	}

	engine := router.SetupRouter(
		logger,
		api.NewRecipeHandler(recipes, ai, logger),
		api.NewPantryHandler(ai, sess, logger),
		api.NewNotebookHandler(notebook, logger),
		api.NewLibraryHandler(),
		api.NewSessionHandler(sess, recipes, logger),
	)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
		logger: logger,
	}, nil
}

func newKV(cfg *config.Config, logger *zap.Logger) (storage.KV, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		logger.Info("using redis storage", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedisKV(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		logger.Info("using file storage", zap.String("dir", cfg.DataDir))
		return storage.NewFileKV(cfg.DataDir)
	}
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
