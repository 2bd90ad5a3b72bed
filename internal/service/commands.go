package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Действия, для которых ограничено число одновременных команд
const (
	actionCreate = "create"
	actionDelete = "delete"
)

// PayoutCommandService отправляет команды создания и удаления выплат.
// Команды не повторяются: у клиента нет ключа идемпотентности.
type PayoutCommandService struct {
	client      domain.LedgerClient
	validator   *validator.Validator
	invalidator domain.CacheInvalidator
	audit       domain.AuditRepository
	guard       *commandGuard
	logger      *zap.Logger
}

// NewPayoutCommandService создает новый PayoutCommandService
func NewPayoutCommandService(
	client domain.LedgerClient,
	v *validator.Validator,
	invalidator domain.CacheInvalidator,
	audit domain.AuditRepository,
	logger *zap.Logger,
) *PayoutCommandService {
	return &PayoutCommandService{
		client:      client,
		validator:   v,
		invalidator: invalidator,
		audit:       audit,
		guard:       newCommandGuard(),
		logger:      logger,
	}
}

// Networks возвращает сети, доступные для выплаты мерчанту
func (s *PayoutCommandService) Networks(ctx context.Context, shopID string) ([]domain.NetworkOption, error) {
	merchant, err := s.loadMerchant(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return domain.AvailableNetworks(merchant), nil
}

// Validate проверяет черновик против актуального агрегата мерчанта без отправки команды
func (s *PayoutCommandService) Validate(ctx context.Context, draft domain.PayoutDraft) (domain.CreatePayoutCommand, error) {
	merchant, err := s.loadMerchant(ctx, draft.ShopID)
	if err != nil {
		return domain.CreatePayoutCommand{}, err
	}
	return s.validator.Validate(merchant, draft)
}

// Create проверяет черновик и создает выплату.
// После успеха кэши мерчантов и выплат сбрасываются.
func (s *PayoutCommandService) Create(ctx context.Context, operatorID string, draft domain.PayoutDraft) (*domain.Payout, error) {
	release, ok := s.guard.acquire(actionCreate, operatorID)
	if !ok {
		return nil, domain.ErrCommandInFlight
	}
	defer release()

	cmd, err := s.Validate(ctx, draft)
	if err != nil {
		return nil, err
	}

	payout, err := s.client.CreatePayout(ctx, cmd)
	if errors.Is(err, domain.ErrCommandUnconfirmed) {
		// Выплата создана, остаток мерчанта уже изменился
		s.invalidate(ctx, true)
		s.record(ctx, &domain.AuditRecord{
			OperatorID: operatorID,
			Action:     domain.AuditActionCreate,
			ShopID:     cmd.ShopID,
			Amount:     cmd.Amount,
			Network:    cmd.Network,
			Outcome:    domain.AuditOutcomeAccepted,
			Reason:     err.Error(),
		})
		s.logger.Warn("payout accepted without a readable response",
			zap.String("operator_id", operatorID),
			zap.String("shop_id", cmd.ShopID),
			zap.Error(err),
		)
		return nil, err
	}
	if err != nil {
		s.record(ctx, &domain.AuditRecord{
			OperatorID: operatorID,
			Action:     domain.AuditActionCreate,
			ShopID:     cmd.ShopID,
			Amount:     cmd.Amount,
			Network:    cmd.Network,
			Outcome:    outcomeOf(err),
			Reason:     err.Error(),
		})
		s.logger.Warn("payout creation failed",
			zap.String("operator_id", operatorID),
			zap.String("shop_id", cmd.ShopID),
			zap.Error(err),
		)
		return nil, err
	}

	s.invalidate(ctx, true)
	s.record(ctx, &domain.AuditRecord{
		OperatorID: operatorID,
		Action:     domain.AuditActionCreate,
		ShopID:     cmd.ShopID,
		PayoutID:   payout.ID,
		Amount:     cmd.Amount,
		Network:    cmd.Network,
		Outcome:    domain.AuditOutcomeAccepted,
	})

	s.logger.Info("payout created",
		zap.String("operator_id", operatorID),
		zap.String("payout_id", payout.ID),
		zap.String("shop_id", cmd.ShopID),
		zap.String("amount", cmd.Amount.String()),
		zap.String("network", string(cmd.Network)),
	)

	return payout, nil
}

// Delete удаляет выплату. Проверку статуса PENDING выполняет внешний сервис.
// После успеха сбрасывается кэш выплат.
func (s *PayoutCommandService) Delete(ctx context.Context, operatorID, payoutID string) error {
	release, ok := s.guard.acquire(actionDelete, operatorID)
	if !ok {
		return domain.ErrCommandInFlight
	}
	defer release()

	if err := s.client.DeletePayout(ctx, payoutID); err != nil {
		s.record(ctx, &domain.AuditRecord{
			OperatorID: operatorID,
			Action:     domain.AuditActionDelete,
			PayoutID:   payoutID,
			Amount:     decimal.Zero,
			Outcome:    outcomeOf(err),
			Reason:     err.Error(),
		})
		s.logger.Warn("payout deletion failed",
			zap.String("operator_id", operatorID),
			zap.String("payout_id", payoutID),
			zap.Error(err),
		)
		return err
	}

	s.invalidate(ctx, false)
	s.record(ctx, &domain.AuditRecord{
		OperatorID: operatorID,
		Action:     domain.AuditActionDelete,
		PayoutID:   payoutID,
		Amount:     decimal.Zero,
		Outcome:    domain.AuditOutcomeAccepted,
	})

	s.logger.Info("payout deleted",
		zap.String("operator_id", operatorID),
		zap.String("payout_id", payoutID),
	)

	return nil
}

func (s *PayoutCommandService) loadMerchant(ctx context.Context, shopID string) (*domain.MerchantAggregate, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, domain.ErrMerchantNotFound
	}

	merchant, err := s.client.GetMerchant(ctx, shopID)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			return nil, err
		}
		return nil, &QueryError{Op: "get merchant", Err: err}
	}

	if !merchant.BreakdownConsistent() {
		s.logger.Debug("gateway breakdown does not match payable total",
			zap.String("shop_id", merchant.ID),
			zap.String("payable", merchant.TotalAmountAfterCommissionUSDT.String()),
		)
	}
	return merchant, nil
}

// invalidate сбрасывает кэши после успешной команды.
// Команда уже выполнена, поэтому ошибки только логируются.
func (s *PayoutCommandService) invalidate(ctx context.Context, merchants bool) {
	ctx = context.WithoutCancel(ctx)

	if merchants {
		if err := s.invalidator.InvalidateMerchants(ctx); err != nil {
			s.logger.Error("failed to invalidate merchants cache", zap.Error(err))
		}
	}
	if err := s.invalidator.InvalidatePayouts(ctx); err != nil {
		s.logger.Error("failed to invalidate payouts cache", zap.Error(err))
	}
}

func (s *PayoutCommandService) record(ctx context.Context, rec *domain.AuditRecord) {
	if err := s.audit.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Error("failed to write audit record",
			zap.String("action", string(rec.Action)),
			zap.String("payout_id", rec.PayoutID),
			zap.Error(err),
		)
	}
}

func outcomeOf(err error) domain.AuditOutcome {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Rejected() {
		return domain.AuditOutcomeRejected
	}
	return domain.AuditOutcomeFailed
}

// commandGuard допускает не более одной команды каждого вида на оператора
type commandGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newCommandGuard() *commandGuard {
	return &commandGuard{active: make(map[string]struct{})}
}

func (g *commandGuard) acquire(action, operatorID string) (func(), bool) {
	key := fmt.Sprintf("%s:%s", action, operatorID)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, true
}
