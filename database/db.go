package database

import (
	"context"
	"fmt"
	"strings"

	"autohub/config"
	"autohub/utils"

	"go.uber.org/zap"
)

// Open builds the backend named by cfg.StoreBackend and checks it is reachable.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	var (
		store Store
		err   error
	)
	backend := strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	switch backend {
	case "", "memory":
		backend = "memory"
		store = NewMemoryStore()
	case "redis":
		store, err = NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisStoreDB)
	case "mongo", "mongodb":
		store, err = NewMongoStore(ctx, cfg.DatabaseURL, cfg.MongoDatabase)
	case "postgres", "postgresql":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
		store, err = NewPostgresStore(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("store backend %s is unreachable: %w", backend, err)
	}
	utils.GetLogger().Info("Store opened", zap.String("backend", backend))
	return store, nil
}
