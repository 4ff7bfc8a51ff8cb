// Command seed resets the stored collections and writes the starter data
// again. Useful after experimenting locally.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/culina-app/backend/config"
	"github.com/culina-app/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var kv storage.KV
	switch cfg.StorageBackend {
	case config.BackendRedis:
		kv, err = storage.NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		kv, err = storage.NewFileKV(cfg.DataDir)
	}
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}

	for _, key := range []string{storage.KeyRecipes, storage.KeyNotebook} {
		if err := kv.Delete(ctx, key); err != nil {
			logger.Fatal("Failed to clear collection", zap.String("key", key), zap.Error(err))
		}
	}

	gateway := storage.NewGateway(kv, logger, 0)
	recipes, err := gateway.LoadRecipes(ctx)
	if err != nil {
		logger.Fatal("Failed to seed recipes", zap.Error(err))
	}
	entries, err := gateway.LoadNotebookEntries(ctx)
	if err != nil {
		logger.Fatal("Failed to seed notebook", zap.Error(err))
	}

	logger.Info("seeded storage",
		zap.Int("recipes", len(recipes)),
		zap.Int("notebook_entries", len(entries)))
}
