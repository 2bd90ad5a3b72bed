package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/filter"
	"github.com/avc/payout-console/internal/service"
	"go.uber.org/zap"
)

// OverviewProvider определяет получение сводки и главной страницы
type OverviewProvider interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	Overview(ctx context.Context, session string, mf domain.MerchantFilter, pf domain.PayoutFilter) (*service.Overview, error)
}

type OverviewHandler struct {
	provider OverviewProvider
	builder  *filter.Builder
	logger   *zap.Logger
}

func NewOverviewHandler(provider OverviewProvider, builder *filter.Builder, logger *zap.Logger) *OverviewHandler {
	return &OverviewHandler{
		provider: provider,
		builder:  builder,
		logger:   logger,
	}
}

// OverviewResponse представляет главную страницу: сводку и обе таблицы
type OverviewResponse struct {
	Stats     *domain.Stats           `json:"stats"`
	Merchants *TablePage[MerchantRow] `json:"merchants"`
	Payouts   *TablePage[PayoutRow]   `json:"payouts"`
}

// Stats возвращает сводку для шапки консоли
func (h *OverviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.provider.Stats(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, "get stats", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats); err != nil {
		h.logger.Error("failed to encode stats response", zap.Error(err))
	}
}

// Overview возвращает сводку и обе таблицы.
// Номера страниц таблиц задаются параметрами merchantsPage и payoutsPage.
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := filter.SelectionFromQuery(q)

	merchantSel := sel
	merchantSel.Page, _ = strconv.Atoi(q.Get("merchantsPage"))
	payoutSel := sel
	payoutSel.Page, _ = strconv.Atoi(q.Get("payoutsPage"))

	overview, err := h.provider.Overview(r.Context(), sessionID(r), h.builder.Merchants(merchantSel), h.builder.Payouts(payoutSel))
	if err != nil {
		writeServiceError(w, h.logger, "overview", err)
		return
	}

	resp := OverviewResponse{Stats: overview.Stats}
	if overview.Merchants != nil {
		resp.Merchants = newTablePage(overview.Merchants, merchantRow)
	} else {
		resp.Merchants = &TablePage[MerchantRow]{Error: overview.MerchantsError}
	}
	if overview.Payouts != nil {
		resp.Payouts = newTablePage(overview.Payouts, payoutRow)
	} else {
		resp.Payouts = &TablePage[PayoutRow]{Error: overview.PayoutsError}
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to encode overview response", zap.Error(err))
	}
}
