package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig содержит параметры подключения к Redis
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration // Время жизни записи
}

// RedisBackend хранит записи в Redis, общем для нескольких экземпляров консоли
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBackend подключается к Redis и проверяет соединение
func NewRedisBackend(ctx context.Context, cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisBackend{client: client, ttl: ttl}, nil
}

// NewRedisBackendFromClient оборачивает готовый клиент
func NewRedisBackendFromClient(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, b.ttl).Err()
}

func (b *RedisBackend) Version(ctx context.Context, namespace string) (int64, error) {
	version, err := b.client.Get(ctx, versionKey(namespace)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Bump атомарно увеличивает версию. Старые записи истекают по TTL.
func (b *RedisBackend) Bump(ctx context.Context, namespace string) (int64, error) {
	return b.client.Incr(ctx, versionKey(namespace)).Result()
}

// Ping проверяет доступность Redis
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}

func versionKey(namespace string) string {
	return "version:" + namespace
}
