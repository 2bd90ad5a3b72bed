package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/payout-console/internal/cache"
	"github.com/avc/payout-console/internal/domain"
	domainmocks "github.com/avc/payout-console/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOverviewService(t *testing.T) (*OverviewService, *domainmocks.LedgerClientMock) {
	mockClient := domainmocks.NewLedgerClientMock(t)
	backend := cache.NewMemoryBackend(time.Minute)
	readers := &Readers{
		Merchants: NewMerchantReader(mockClient, backend, zap.NewNop()),
		Payouts:   NewPayoutReader(mockClient, backend, zap.NewNop()),
	}
	return NewOverviewService(mockClient, readers, zap.NewNop()), mockClient
}

func TestOverviewService_Overview(t *testing.T) {
	ctx := context.Background()
	mf := domain.MerchantFilter{Page: 1, Limit: 20}
	pf := domain.PayoutFilter{Page: 1, Limit: 20}
	stats := &domain.Stats{PendingPayoutsCount: 2, PendingAmountUSDT: decimal.NewFromInt(50)}

	t.Run("All regions loaded", func(t *testing.T) {
		svc, mockClient := newOverviewService(t)
		mockClient.EXPECT().GetStats(mock.Anything).Return(stats, nil).Once()
		mockClient.EXPECT().ListMerchants(mock.Anything, mf).Return(merchantsPage(1, "a"), nil).Once()
		mockClient.EXPECT().ListPayouts(mock.Anything, pf).Return(&domain.Page[domain.Payout]{Items: []domain.Payout{{ID: "p1"}}}, nil).Once()

		overview, err := svc.Overview(ctx, "", mf, pf)
		require.NoError(t, err)
		assert.Equal(t, int64(2), overview.Stats.PendingPayoutsCount)
		assert.Len(t, overview.Merchants.Items, 1)
		assert.Len(t, overview.Payouts.Items, 1)
		assert.Empty(t, overview.MerchantsError)
		assert.Empty(t, overview.PayoutsError)
	})

	t.Run("Table failure stays in its region", func(t *testing.T) {
		svc, mockClient := newOverviewService(t)
		mockClient.EXPECT().GetStats(mock.Anything).Return(stats, nil).Once()
		mockClient.EXPECT().ListMerchants(mock.Anything, mf).Return(merchantsPage(1, "a"), nil).Once()
		mockClient.EXPECT().ListPayouts(mock.Anything, pf).Return(nil, errors.New("ledger timeout")).Once()

		overview, err := svc.Overview(ctx, "", mf, pf)
		require.NoError(t, err)
		assert.NotNil(t, overview.Stats)
		assert.NotNil(t, overview.Merchants)
		assert.Nil(t, overview.Payouts)
		assert.Contains(t, overview.PayoutsError, "ledger timeout")
	})

	t.Run("Stats failure fails the page", func(t *testing.T) {
		svc, mockClient := newOverviewService(t)
		mockClient.EXPECT().GetStats(mock.Anything).Return(nil, errors.New("stats down")).Once()
		mockClient.EXPECT().ListMerchants(mock.Anything, mf).Return(merchantsPage(1), nil).Maybe()
		mockClient.EXPECT().ListPayouts(mock.Anything, pf).Return(&domain.Page[domain.Payout]{}, nil).Maybe()

		overview, err := svc.Overview(ctx, "", mf, pf)
		assert.Nil(t, overview)

		var qErr *QueryError
		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, "get stats", qErr.Op)
	})
}

func TestOverviewService_StatsNotCached(t *testing.T) {
	svc, mockClient := newOverviewService(t)
	mockClient.EXPECT().GetStats(mock.Anything).Return(&domain.Stats{}, nil).Twice()

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)
}
