package app

import (
	"context"
	"fmt"

	"github.com/avc/payout-console/internal/cache"
	"github.com/avc/payout-console/internal/config"
	"github.com/avc/payout-console/internal/handlers"
	"go.uber.org/zap"
)

// cacheBackend содержит выбранное хранилище кэша чтения.
// pinger и close заданы только для Redis.
type cacheBackend struct {
	backend cache.Backend
	pinger  handlers.Pinger
	close   func() error
}

// initCache выбирает Redis, если задан REDIS_ADDRESS, иначе кэш в памяти процесса
func initCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*cacheBackend, error) {
	if cfg.RedisAddress == "" {
		logger.Info("using in-memory read cache")
		return &cacheBackend{
			backend: cache.NewMemoryBackend(cfg.CacheTTL),
			close:   func() error { return nil },
		}, nil
	}

	redisBackend, err := cache.NewRedisBackend(ctx, cache.RedisConfig{
		Address:  cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init redis cache: %w", err)
	}
	logger.Info("connected to redis", zap.String("address", cfg.RedisAddress))

	return &cacheBackend{
		backend: redisBackend,
		pinger:  redisBackend,
		close:   redisBackend.Close,
	}, nil
}
