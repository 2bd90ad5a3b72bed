package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avc/payout-console/internal/domain"
	"go.uber.org/zap"
)

// AuditLister определяет чтение журнала команд
type AuditLister interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error)
}

type AuditHandler struct {
	audit  AuditLister
	logger *zap.Logger
}

func NewAuditHandler(audit AuditLister, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		audit:  audit,
		logger: logger,
	}
}

// List возвращает последние записи журнала команд.
// Лимит задается параметром limit, значение по умолчанию выбирает хранилище.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.audit.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list audit records", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := writeJSON(w, http.StatusOK, records); err != nil {
		h.logger.Error("failed to encode audit response", zap.Error(err))
	}
}
