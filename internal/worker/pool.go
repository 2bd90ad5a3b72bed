package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/payout-console/internal/domain"
	"go.uber.org/zap"
)

const (
	// maxScanPages ограничивает число страниц за одно сканирование
	maxScanPages = 50
	scanPageSize = 100

	// settlementOperator записывается в журнал вместо оператора
	settlementOperator = "ledger"

	// maxSettleAttempts ограничивает число проверок одной выплаты
	maxSettleAttempts = 5
)

// Pool представляет пул воркеров, отслеживающих проведение выплат.
// Сканер запоминает набор PENDING выплат; выплаты, покинувшие набор,
// проверяются воркерами, после чего кэши чтения сбрасываются.
type Pool struct {
	workers      int
	queue        chan string
	client       domain.LedgerClient
	invalidator  domain.CacheInvalidator
	audit        domain.AuditRepository
	logger       *zap.Logger
	scanInterval time.Duration
	pageSize     int

	mu      sync.Mutex
	pending map[string]struct{}
	seeded  bool

	// Выплаты, которые не удалось проверить, повторяются при следующем сканировании
	retry    map[string]struct{}
	attempts map[string]int

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	client domain.LedgerClient,
	invalidator domain.CacheInvalidator,
	audit domain.AuditRepository,
	logger *zap.Logger,
) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if scanInterval <= 0 {
		scanInterval = 30 * time.Second
	}
	return &Pool{
		workers:      workers,
		queue:        make(chan string, queueSize),
		client:       client,
		invalidator:  invalidator,
		audit:        audit,
		logger:       logger,
		scanInterval: scanInterval,
		pageSize:     scanPageSize,
		pending:      make(map[string]struct{}),
		retry:        make(map[string]struct{}),
		attempts:     make(map[string]int),
		stop:         make(chan struct{}),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер pending выплат
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool и ждет завершения воркеров.
// Необработанные выплаты из очереди отбрасываются.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	p.wg.Wait()
}

// worker обрабатывает выплаты из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case <-p.stop:
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case payoutID := <-p.queue:
			p.processPayout(ctx, payoutID)
		}
	}
}

// scanner периодически сканирует pending выплаты
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	// Первое сканирование заполняет исходный набор
	p.scanPendingPayouts(ctx)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-p.stop:
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingPayouts(ctx)
		}
	}
}

// scanPendingPayouts обновляет набор PENDING выплат и ставит в очередь покинувшие его
func (p *Pool) scanPendingPayouts(ctx context.Context) {
	current, err := p.listPending(ctx)
	if err != nil {
		p.logger.Error("failed to list pending payouts", zap.Error(err))
		return
	}

	p.mu.Lock()
	var left []string
	if p.seeded {
		for id := range p.pending {
			if _, still := current[id]; !still {
				left = append(left, id)
			}
		}
	}
	for id := range p.retry {
		delete(p.retry, id)
		if _, still := current[id]; still {
			delete(p.attempts, id)
			continue
		}
		left = append(left, id)
	}
	p.pending = current
	p.seeded = true
	p.mu.Unlock()

	for _, id := range left {
		select {
		case p.queue <- id:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, проверим при следующем сканировании
			p.logger.Warn("queue is full, deferring payout", zap.String("payout_id", id))
			p.scheduleRetry(id)
		}
	}
}

// scheduleRetry откладывает проверку выплаты до следующего сканирования
func (p *Pool) scheduleRetry(payoutID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.attempts[payoutID]++
	if p.attempts[payoutID] >= maxSettleAttempts {
		delete(p.attempts, payoutID)
		delete(p.retry, payoutID)
		p.logger.Error("giving up on payout settlement check",
			zap.String("payout_id", payoutID),
			zap.Int("attempts", maxSettleAttempts),
		)
		return
	}
	p.retry[payoutID] = struct{}{}
}

// resolve забывает выплату после окончательной проверки
func (p *Pool) resolve(payoutID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.attempts, payoutID)
	delete(p.retry, payoutID)
}

// listPending собирает идентификаторы всех PENDING выплат постранично
func (p *Pool) listPending(ctx context.Context) (map[string]struct{}, error) {
	ids := make(map[string]struct{})

	for page := 1; page <= maxScanPages; page++ {
		result, err := p.client.ListPayouts(ctx, domain.PayoutFilter{
			Page:   page,
			Limit:  p.pageSize,
			Status: domain.PayoutStatusPending,
		})
		if err != nil {
			return nil, err
		}

		for _, payout := range result.Items {
			ids[payout.ID] = struct{}{}
		}

		if len(result.Items) < p.pageSize || (result.TotalCount > 0 && len(ids) >= result.TotalCount) {
			break
		}
	}

	return ids, nil
}

// processPayout проверяет выплату, покинувшую набор PENDING
func (p *Pool) processPayout(ctx context.Context, payoutID string) {
	p.logger.Debug("processing payout", zap.String("payout_id", payoutID))

	payout, err := p.client.GetPayout(ctx, payoutID)
	if err != nil {
		if errors.Is(err, domain.ErrPayoutNotFound) {
			// Выплата удалена, журнал удаления пишет сервис команд
			p.logger.Debug("payout disappeared", zap.String("payout_id", payoutID))
			p.resolve(payoutID)
			p.invalidate(ctx, false)
			return
		}

		p.logger.Error("failed to get payout",
			zap.String("payout_id", payoutID),
			zap.Error(err),
		)
		p.scheduleRetry(payoutID)
		return
	}
	p.resolve(payoutID)

	if !domain.CanTransition(domain.PayoutStatusPending, payout.Status) {
		if payout.Status != domain.PayoutStatusPending {
			p.logger.Warn("unexpected payout status",
				zap.String("payout_id", payoutID),
				zap.String("status", string(payout.Status)),
			)
		}
		return
	}

	outcome := domain.AuditOutcomeAccepted
	if payout.Status == domain.PayoutStatusRejected {
		outcome = domain.AuditOutcomeRejected
	}

	err = p.audit.Record(ctx, &domain.AuditRecord{
		OperatorID: settlementOperator,
		Action:     domain.AuditActionSettled,
		ShopID:     payout.ShopID,
		PayoutID:   payout.ID,
		Amount:     payout.Amount,
		Network:    payout.Network,
		Outcome:    outcome,
		Reason:     string(payout.Status),
	})
	if err != nil {
		p.logger.Error("failed to record settlement",
			zap.String("payout_id", payoutID),
			zap.Error(err),
		)
	}

	p.invalidate(ctx, true)

	p.logger.Info("payout settled",
		zap.String("payout_id", payoutID),
		zap.String("status", string(payout.Status)),
		zap.String("amount", payout.Amount.String()),
	)
}

func (p *Pool) invalidate(ctx context.Context, merchants bool) {
	if merchants {
		if err := p.invalidator.InvalidateMerchants(ctx); err != nil {
			p.logger.Error("failed to invalidate merchants cache", zap.Error(err))
		}
	}
	if err := p.invalidator.InvalidatePayouts(ctx); err != nil {
		p.logger.Error("failed to invalidate payouts cache", zap.Error(err))
	}
}
