package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	// defaultTTL применяется, если время жизни записи не задано
	defaultTTL = 5 * time.Minute

	// minSweepSize задает размер карты, с которого MemoryBackend удаляет устаревшие записи
	minSweepSize = 256
)

// memoryEntry хранит значение и момент его устаревания
type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend хранит записи в памяти процесса.
// Записи живут не дольше ttl, как и в RedisBackend.
type MemoryBackend struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	versions map[string]int64
	ttl      time.Duration
	now      func() time.Time
	sweepAt  int
}

// NewMemoryBackend создает новый MemoryBackend.
// Неположительный ttl заменяется значением по умолчанию.
func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryBackend{
		entries:  make(map[string]memoryEntry),
		versions: make(map[string]int64),
		ttl:      ttl,
		now:      time.Now,
		sweepAt:  minSweepSize,
	}
}

// Get считает устаревшую запись промахом и удаляет ее
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	entry, ok := b.entries[key]
	b.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !b.now().Before(entry.expiresAt) {
		b.mu.Lock()
		if current, ok := b.entries[key]; ok && !b.now().Before(current.expiresAt) {
			delete(b.entries, key)
		}
		b.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.entries[key] = memoryEntry{value: value, expiresAt: now.Add(b.ttl)}

	// Ключи, которые больше не запрашиваются, удаляются при росте карты
	if len(b.entries) >= b.sweepAt {
		b.sweepExpired(now)
		b.sweepAt = max(2*len(b.entries), minSweepSize)
	}
	return nil
}

func (b *MemoryBackend) Version(_ context.Context, namespace string) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.versions[namespace], nil
}

// Bump увеличивает версию и удаляет записи старых версий
func (b *MemoryBackend) Bump(_ context.Context, namespace string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.versions[namespace]++
	prefix := namespace + ":"
	for key := range b.entries {
		if strings.HasPrefix(key, prefix) {
			delete(b.entries, key)
		}
	}
	return b.versions[namespace], nil
}

// Len возвращает количество записей, включая еще не удаленные устаревшие
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

// sweepExpired вызывается под b.mu
func (b *MemoryBackend) sweepExpired(now time.Time) {
	for key, entry := range b.entries {
		if !now.Before(entry.expiresAt) {
			delete(b.entries, key)
		}
	}
}
