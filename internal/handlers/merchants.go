package handlers

import (
	"context"
	"net/http"

	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/filter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MerchantReader определяет чтение агрегатов мерчантов
type MerchantReader interface {
	Fetch(ctx context.Context, session string, f domain.MerchantFilter) (*domain.Page[domain.MerchantAggregate], error)
}

// NetworkLister определяет получение сетей, доступных мерчанту
type NetworkLister interface {
	Networks(ctx context.Context, shopID string) ([]domain.NetworkOption, error)
}

type MerchantsHandler struct {
	reader   MerchantReader
	networks NetworkLister
	builder  *filter.Builder
	logger   *zap.Logger
}

func NewMerchantsHandler(reader MerchantReader, networks NetworkLister, builder *filter.Builder, logger *zap.Logger) *MerchantsHandler {
	return &MerchantsHandler{
		reader:   reader,
		networks: networks,
		builder:  builder,
		logger:   logger,
	}
}

// List возвращает страницу агрегатов мерчантов по фильтрам из строки запроса
func (h *MerchantsHandler) List(w http.ResponseWriter, r *http.Request) {
	f := h.builder.Merchants(filter.SelectionFromQuery(r.URL.Query()))

	page, err := h.reader.Fetch(r.Context(), sessionID(r), f)
	if err != nil {
		writeServiceError(w, h.logger, "list merchants", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, newTablePage(page, merchantRow)); err != nil {
		h.logger.Error("failed to encode merchants response", zap.Error(err))
	}
}

// Networks возвращает список выбора сети для формы выплаты
func (h *MerchantsHandler) Networks(w http.ResponseWriter, r *http.Request) {
	options, err := h.networks.Networks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, "list networks", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, options); err != nil {
		h.logger.Error("failed to encode networks response", zap.Error(err))
	}
}
