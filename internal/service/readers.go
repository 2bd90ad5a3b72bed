package service

import (
	"context"
	"sync"

	"github.com/avc/payout-console/internal/cache"
	"github.com/avc/payout-console/internal/domain"
	"go.uber.org/zap"
)

// Пространства имен кэша читателей
const (
	merchantsNamespace = "merchants"
	payoutsNamespace   = "payouts"
)

type filterKey interface {
	Key() string
}

// Reader читает страницы из внешнего сервиса через кэш.
// Результаты не пересортировываются и не фильтруются.
type Reader[T any, F filterKey] struct {
	op     string
	fetch  func(ctx context.Context, filter F) (*domain.Page[T], error)
	store  *cache.Store[*domain.Page[T]]
	latest *latestTracker
}

// MerchantReader читает агрегаты мерчантов
type MerchantReader = Reader[domain.MerchantAggregate, domain.MerchantFilter]

// PayoutReader читает историю выплат
type PayoutReader = Reader[domain.Payout, domain.PayoutFilter]

// NewMerchantReader создает читатель агрегатов мерчантов
func NewMerchantReader(client domain.LedgerClient, backend cache.Backend, logger *zap.Logger) *MerchantReader {
	return &MerchantReader{
		op:     "list merchants",
		fetch:  client.ListMerchants,
		store:  cache.NewStore[*domain.Page[domain.MerchantAggregate]](merchantsNamespace, backend, logger),
		latest: newLatestTracker(),
	}
}

// NewPayoutReader создает читатель истории выплат
func NewPayoutReader(client domain.LedgerClient, backend cache.Backend, logger *zap.Logger) *PayoutReader {
	return &PayoutReader{
		op:     "list payouts",
		fetch:  client.ListPayouts,
		store:  cache.NewStore[*domain.Page[domain.Payout]](payoutsNamespace, backend, logger),
		latest: newLatestTracker(),
	}
}

// Fetch возвращает страницу, соответствующую фильтру.
// Если в рамках той же сессии начат более новый запрос, текущий отменяется
// и возвращает domain.ErrSuperseded. Пустая сессия не отслеживается.
func (r *Reader[T, F]) Fetch(ctx context.Context, session string, filter F) (*domain.Page[T], error) {
	ctx, finish := r.latest.begin(ctx, session)

	page, err := r.store.Get(ctx, filter.Key(), func(ctx context.Context) (*domain.Page[T], error) {
		return r.fetch(ctx, filter)
	})

	if !finish() {
		return nil, domain.ErrSuperseded
	}
	if err != nil {
		return nil, &QueryError{Op: r.op, Err: err}
	}
	return page, nil
}

// Invalidate помечает все закэшированные страницы устаревшими
func (r *Reader[T, F]) Invalidate(ctx context.Context) error {
	return r.store.Invalidate(ctx)
}

// Readers объединяет читателей и реализует domain.CacheInvalidator
type Readers struct {
	Merchants *MerchantReader
	Payouts   *PayoutReader
}

func (r *Readers) InvalidateMerchants(ctx context.Context) error {
	return r.Merchants.Invalidate(ctx)
}

func (r *Readers) InvalidatePayouts(ctx context.Context) error {
	return r.Payouts.Invalidate(ctx)
}

// latestTracker отменяет предыдущий запрос сессии при старте нового
type latestTracker struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	seq    uint64
	cancel context.CancelFunc
}

func newLatestTracker() *latestTracker {
	return &latestTracker{sessions: make(map[string]*sessionState)}
}

// begin регистрирует новый запрос сессии.
// finish возвращает false, если за время запроса был начат более новый.
func (t *latestTracker) begin(ctx context.Context, session string) (context.Context, func() bool) {
	if session == "" {
		return ctx, func() bool { return true }
	}

	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	state, ok := t.sessions[session]
	if !ok {
		state = &sessionState{}
		t.sessions[session] = state
	}
	if state.cancel != nil {
		state.cancel()
	}
	state.seq++
	seq := state.seq
	state.cancel = cancel
	t.mu.Unlock()

	finish := func() bool {
		t.mu.Lock()
		defer t.mu.Unlock()

		cancel()
		if state.seq != seq {
			return false
		}
		if t.sessions[session] == state {
			delete(t.sessions, session)
		}
		return true
	}
	return ctx, finish
}
