package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/payout-console/internal/cache"
	"github.com/avc/payout-console/internal/domain"
	domainmocks "github.com/avc/payout-console/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func merchantsPage(page int, ids ...string) *domain.Page[domain.MerchantAggregate] {
	items := make([]domain.MerchantAggregate, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.MerchantAggregate{ID: id})
	}
	return &domain.Page[domain.MerchantAggregate]{Items: items, TotalCount: len(ids), Page: page, PageSize: 20}
}

func TestMerchantReader_Fetch(t *testing.T) {
	mockClient := domainmocks.NewLedgerClientMock(t)
	reader := NewMerchantReader(mockClient, cache.NewMemoryBackend(time.Minute), zap.NewNop())
	ctx := context.Background()

	first := domain.MerchantFilter{Page: 1, Limit: 20}
	second := domain.MerchantFilter{Page: 2, Limit: 20}

	t.Run("Miss goes to the ledger", func(t *testing.T) {
		mockClient.EXPECT().ListMerchants(mock.Anything, first).Return(merchantsPage(1, "a", "b"), nil).Once()

		page, err := reader.Fetch(ctx, "op-1", first)
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("Exact repeat is cached", func(t *testing.T) {
		page, err := reader.Fetch(ctx, "op-1", domain.MerchantFilter{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, "a", page.Items[0].ID)
	})

	t.Run("Page change is a new key", func(t *testing.T) {
		mockClient.EXPECT().ListMerchants(mock.Anything, second).Return(merchantsPage(2, "c"), nil).Once()

		page, err := reader.Fetch(ctx, "op-1", second)
		require.NoError(t, err)
		assert.Equal(t, "c", page.Items[0].ID)
	})

	t.Run("Invalidation forces refetch", func(t *testing.T) {
		require.NoError(t, reader.Invalidate(ctx))
		mockClient.EXPECT().ListMerchants(mock.Anything, first).Return(merchantsPage(1, "b"), nil).Once()

		page, err := reader.Fetch(ctx, "op-1", first)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Ledger error is a query error", func(t *testing.T) {
		failing := domain.MerchantFilter{Page: 3, Limit: 20}
		mockClient.EXPECT().ListMerchants(mock.Anything, failing).Return(nil, errors.New("ledger down")).Once()

		page, err := reader.Fetch(ctx, "op-1", failing)
		assert.Nil(t, page)

		var qErr *QueryError
		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, "list merchants", qErr.Op)
	})
}

func TestPayoutReader_LastRequestWins(t *testing.T) {
	mockClient := domainmocks.NewLedgerClientMock(t)
	reader := NewPayoutReader(mockClient, cache.NewMemoryBackend(time.Minute), zap.NewNop())
	ctx := context.Background()

	slow := domain.PayoutFilter{Page: 1, Limit: 20}
	fast := domain.PayoutFilter{Page: 1, Limit: 20, Status: domain.PayoutStatusPending}

	started := make(chan struct{})
	release := make(chan struct{})
	mockClient.EXPECT().ListPayouts(mock.Anything, slow).
		RunAndReturn(func(ctx context.Context, f domain.PayoutFilter) (*domain.Page[domain.Payout], error) {
			close(started)
			<-release
			return &domain.Page[domain.Payout]{Items: []domain.Payout{{ID: "old"}}, Page: 1, PageSize: 20}, nil
		}).Once()
	mockClient.EXPECT().ListPayouts(mock.Anything, fast).
		Return(&domain.Page[domain.Payout]{Items: []domain.Payout{{ID: "new"}}, Page: 1, PageSize: 20}, nil).Once()

	oldResult := make(chan error, 1)
	go func() {
		_, err := reader.Fetch(ctx, "op-1", slow)
		oldResult <- err
	}()
	<-started

	page, err := reader.Fetch(ctx, "op-1", fast)
	require.NoError(t, err)
	assert.Equal(t, "new", page.Items[0].ID)

	select {
	case err := <-oldResult:
		assert.ErrorIs(t, err, domain.ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("superseded fetch did not return")
	}

	close(release)
}

func TestPayoutReader_SessionsAreIndependent(t *testing.T) {
	mockClient := domainmocks.NewLedgerClientMock(t)
	reader := NewPayoutReader(mockClient, cache.NewMemoryBackend(time.Minute), zap.NewNop())
	ctx := context.Background()

	f1 := domain.PayoutFilter{Page: 1, Limit: 20}
	f2 := domain.PayoutFilter{Page: 2, Limit: 20}

	started := make(chan struct{})
	release := make(chan struct{})
	mockClient.EXPECT().ListPayouts(mock.Anything, f1).
		RunAndReturn(func(ctx context.Context, f domain.PayoutFilter) (*domain.Page[domain.Payout], error) {
			close(started)
			<-release
			return &domain.Page[domain.Payout]{Page: 1}, nil
		}).Once()
	mockClient.EXPECT().ListPayouts(mock.Anything, f2).Return(&domain.Page[domain.Payout]{Page: 2}, nil).Once()

	result := make(chan error, 1)
	go func() {
		_, err := reader.Fetch(ctx, "op-1", f1)
		result <- err
	}()
	<-started

	_, err := reader.Fetch(ctx, "op-2", f2)
	require.NoError(t, err)

	close(release)
	assert.NoError(t, <-result)
}

func TestLatestTracker(t *testing.T) {
	tracker := newLatestTracker()
	ctx := context.Background()

	firstCtx, finishFirst := tracker.begin(ctx, "s")
	_, finishSecond := tracker.begin(ctx, "s")

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.True(t, finishSecond())
	assert.False(t, finishFirst())
	assert.Empty(t, tracker.sessions)

	_, finishUntracked := tracker.begin(ctx, "")
	assert.True(t, finishUntracked())
}
