package service

import (
	"context"

	"github.com/avc/payout-console/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Overview представляет данные главной страницы выплат.
// Ошибка таблицы затрагивает только ее область.
type Overview struct {
	Stats          *domain.Stats                          `json:"stats"`
	Merchants      *domain.Page[domain.MerchantAggregate] `json:"merchants,omitempty"`
	MerchantsError string                                 `json:"merchantsError,omitempty"`
	Payouts        *domain.Page[domain.Payout]            `json:"payouts,omitempty"`
	PayoutsError   string                                 `json:"payoutsError,omitempty"`
}

// OverviewService собирает сводку и таблицы страницы выплат
type OverviewService struct {
	client  domain.LedgerClient
	readers *Readers
	logger  *zap.Logger
}

// NewOverviewService создает новый OverviewService
func NewOverviewService(client domain.LedgerClient, readers *Readers, logger *zap.Logger) *OverviewService {
	return &OverviewService{
		client:  client,
		readers: readers,
		logger:  logger,
	}
}

// Stats получает сводку. Сводка не кэшируется.
func (s *OverviewService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.client.GetStats(ctx)
	if err != nil {
		return nil, &QueryError{Op: "get stats", Err: err}
	}
	return stats, nil
}

// Overview параллельно загружает сводку и обе таблицы.
// Ошибка сводки проваливает всю страницу, ошибки таблиц возвращаются по областям.
func (s *OverviewService) Overview(ctx context.Context, session string, mf domain.MerchantFilter, pf domain.PayoutFilter) (*Overview, error) {
	var result Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.Stats(gctx)
		if err != nil {
			return err
		}
		result.Stats = stats
		return nil
	})

	g.Go(func() error {
		page, err := s.readers.Merchants.Fetch(gctx, session, mf)
		if err != nil {
			s.logger.Warn("merchants table unavailable", zap.Error(err))
			result.MerchantsError = err.Error()
			return nil
		}
		result.Merchants = page
		return nil
	})

	g.Go(func() error {
		page, err := s.readers.Payouts.Fetch(gctx, session, pf)
		if err != nil {
			s.logger.Warn("payouts table unavailable", zap.Error(err))
			result.PayoutsError = err.Error()
			return nil
		}
		result.Payouts = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
