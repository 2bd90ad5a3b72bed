// Package cache реализует кэш результатов чтения с дедупликацией запросов
// и сбросом по пространству имен.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Backend хранит сериализованные значения и версии пространств имен
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Version(ctx context.Context, namespace string) (int64, error)
	Bump(ctx context.Context, namespace string) (int64, error)
}

// FetchFunc загружает значение при промахе кэша
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Store кэширует результаты одного читателя.
// Ключ записи включает версию пространства имен, поэтому после Invalidate
// все последующие чтения идут в сеть.
type Store[V any] struct {
	namespace string
	backend   Backend
	group     singleflight.Group
	logger    *zap.Logger
}

// NewStore создает новый Store
func NewStore[V any](namespace string, backend Backend, logger *zap.Logger) *Store[V] {
	return &Store[V]{
		namespace: namespace,
		backend:   backend,
		logger:    logger,
	}
}

// Get возвращает значение из кэша или загружает его через fetch.
// Одновременные промахи по одному ключу выполняют fetch один раз.
func (s *Store[V]) Get(ctx context.Context, key string, fetch FetchFunc[V]) (V, error) {
	var zero V

	version, err := s.backend.Version(ctx, s.namespace)
	if err != nil {
		// Кэш недоступен - читаем напрямую
		s.logger.Warn("cache version unavailable, bypassing cache",
			zap.String("namespace", s.namespace),
			zap.Error(err),
		)
		return fetch(ctx)
	}

	fullKey := s.key(version, key)
	if value, ok := s.lookup(ctx, fullKey); ok {
		return value, nil
	}

	ch := s.group.DoChan(fullKey, func() (interface{}, error) {
		// Запрос общий для всех ожидающих, отмена одного не должна его прерывать
		fetchCtx := context.WithoutCancel(ctx)

		value, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.store(fetchCtx, version, fullKey, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// Invalidate помечает все записи пространства имен устаревшими
func (s *Store[V]) Invalidate(ctx context.Context) error {
	version, err := s.backend.Bump(ctx, s.namespace)
	if err != nil {
		return fmt.Errorf("cache: failed to invalidate %s: %w", s.namespace, err)
	}
	s.logger.Debug("cache invalidated",
		zap.String("namespace", s.namespace),
		zap.Int64("version", version),
	)
	return nil
}

func (s *Store[V]) key(version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", s.namespace, version, key)
}

func (s *Store[V]) lookup(ctx context.Context, fullKey string) (V, bool) {
	var value V

	data, ok, err := s.backend.Get(ctx, fullKey)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", fullKey), zap.Error(err))
		return value, false
	}
	if !ok {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("cache entry corrupted", zap.String("key", fullKey), zap.Error(err))
		return value, false
	}
	return value, true
}

// store сохраняет значение, только если версия не изменилась за время загрузки
func (s *Store[V]) store(ctx context.Context, version int64, fullKey string, value V) {
	current, err := s.backend.Version(ctx, s.namespace)
	if err != nil || current != version {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode cache entry", zap.String("key", fullKey), zap.Error(err))
		return
	}
	if err := s.backend.Set(ctx, fullKey, data); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", fullKey), zap.Error(err))
	}
}
