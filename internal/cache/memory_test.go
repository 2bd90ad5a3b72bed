package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock управляет временем MemoryBackend в тестах
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClockedBackend(ttl time.Duration) (*MemoryBackend, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	backend := NewMemoryBackend(ttl)
	backend.now = clock.Now
	return backend, clock
}

func TestMemoryBackend_TTL(t *testing.T) {
	ctx := context.Background()
	backend, clock := newClockedBackend(time.Minute)

	require.NoError(t, backend.Set(ctx, "merchants:v0:page=1", []byte("a")))

	clock.Advance(59 * time.Second)
	value, ok, err := backend.Get(ctx, "merchants:v0:page=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), value)

	clock.Advance(time.Second)
	_, ok, err = backend.Get(ctx, "merchants:v0:page=1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, backend.Len())
}

func TestMemoryBackend_DefaultTTL(t *testing.T) {
	backend := NewMemoryBackend(0)
	assert.Equal(t, defaultTTL, backend.ttl)
}

func TestMemoryBackend_SweepsUnrequestedKeys(t *testing.T) {
	ctx := context.Background()
	backend, clock := newClockedBackend(time.Minute)

	for i := 0; i < minSweepSize-1; i++ {
		require.NoError(t, backend.Set(ctx, fmt.Sprintf("merchants:v0:search=%d", i), []byte("x")))
	}
	clock.Advance(2 * time.Minute)

	// Запись, достигшая порога, удаляет все устаревшие
	require.NoError(t, backend.Set(ctx, "merchants:v0:search=fresh", []byte("y")))
	assert.Equal(t, 1, backend.Len())
}

func TestStore_ExpiredEntryIsRefetched(t *testing.T) {
	ctx := context.Background()
	backend, clock := newClockedBackend(time.Minute)
	store := NewStore[page]("merchants", backend, zap.NewNop())

	var calls int32
	_, err := store.Get(ctx, "page=1", countingFetch(&calls, page{Items: []string{"old"}}))
	require.NoError(t, err)

	_, err = store.Get(ctx, "page=1", countingFetch(&calls, page{Items: []string{"new"}}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	clock.Advance(time.Minute)
	fresh, err := store.Get(ctx, "page=1", countingFetch(&calls, page{Items: []string{"new"}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, fresh.Items)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
