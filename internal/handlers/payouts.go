package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/filter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PayoutReader определяет чтение истории выплат
type PayoutReader interface {
	Fetch(ctx context.Context, session string, f domain.PayoutFilter) (*domain.Page[domain.Payout], error)
}

// PayoutCommands определяет команды над выплатами
type PayoutCommands interface {
	Validate(ctx context.Context, draft domain.PayoutDraft) (domain.CreatePayoutCommand, error)
	Create(ctx context.Context, operatorID string, draft domain.PayoutDraft) (*domain.Payout, error)
	Delete(ctx context.Context, operatorID, payoutID string) error
}

type PayoutsHandler struct {
	reader   PayoutReader
	commands PayoutCommands
	builder  *filter.Builder
	logger   *zap.Logger
}

func NewPayoutsHandler(reader PayoutReader, commands PayoutCommands, builder *filter.Builder, logger *zap.Logger) *PayoutsHandler {
	return &PayoutsHandler{
		reader:   reader,
		commands: commands,
		builder:  builder,
		logger:   logger,
	}
}

// flexibleAmount принимает сумму и строкой, и числом.
// Разбор суммы выполняет валидатор.
type flexibleAmount string

func (a *flexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = flexibleAmount(s)
		return nil
	}
	*a = flexibleAmount(data)
	return nil
}

// PayoutRequest представляет форму создания выплаты
type PayoutRequest struct {
	ShopID     string         `json:"shopId"`
	Amount     flexibleAmount `json:"amount"`
	Network    string         `json:"network"`
	Notes      string         `json:"notes"`
	TxID       string         `json:"txid"`
	PeriodFrom string         `json:"periodFrom"`
	PeriodTo   string         `json:"periodTo"`
}

// draft преобразует форму в черновик. Неверный формат даты считается ошибкой запроса.
func (req PayoutRequest) draft() (domain.PayoutDraft, error) {
	draft := domain.PayoutDraft{
		ShopID: strings.TrimSpace(req.ShopID),
		Amount: string(req.Amount),
		Notes:  req.Notes,
		TxID:   req.TxID,
	}

	// Неизвестная сеть остается как есть и отклоняется валидатором
	if n, ok := domain.ParseNetwork(req.Network); ok {
		draft.Network = n
	} else {
		draft.Network = domain.Network(strings.TrimSpace(req.Network))
	}

	var err error
	if draft.PeriodFrom, err = parseOptionalDate(req.PeriodFrom); err != nil {
		return draft, fmt.Errorf("invalid periodFrom: %w", err)
	}
	if draft.PeriodTo, err = parseOptionalDate(req.PeriodTo); err != nil {
		return draft, fmt.Errorf("invalid periodTo: %w", err)
	}
	return draft, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := filter.ParseDate(s)
	if !ok {
		return nil, fmt.Errorf("%q is not a date", s)
	}
	return &t, nil
}

func decodePayoutRequest(r *http.Request) (domain.PayoutDraft, error) {
	var req PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.PayoutDraft{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return req.draft()
}

// List возвращает страницу истории выплат по фильтрам из строки запроса
func (h *PayoutsHandler) List(w http.ResponseWriter, r *http.Request) {
	f := h.builder.Payouts(filter.SelectionFromQuery(r.URL.Query()))

	page, err := h.reader.Fetch(r.Context(), sessionID(r), f)
	if err != nil {
		writeServiceError(w, h.logger, "list payouts", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, newTablePage(page, payoutRow)); err != nil {
		h.logger.Error("failed to encode payouts response", zap.Error(err))
	}
}

// Validate проверяет форму без отправки команды
func (h *PayoutsHandler) Validate(w http.ResponseWriter, r *http.Request) {
	draft, err := decodePayoutRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmd, err := h.commands.Validate(r.Context(), draft)
	if err != nil {
		writeServiceError(w, h.logger, "validate payout", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, commandView(cmd)); err != nil {
		h.logger.Error("failed to encode validation response", zap.Error(err))
	}
}

// Create проверяет форму и создает выплату
func (h *PayoutsHandler) Create(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := GetOperatorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	draft, err := decodePayoutRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	payout, err := h.commands.Create(r.Context(), operatorID, draft)
	if err != nil {
		writeServiceError(w, h.logger, "create payout", err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, payoutRow(payout)); err != nil {
		h.logger.Error("failed to encode payout response", zap.Error(err))
	}
}

// Delete удаляет выплату. Разрешено только для PENDING, проверку выполняет внешний сервис.
func (h *PayoutsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := GetOperatorID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payoutID := chi.URLParam(r, "id")
	if payoutID == "" {
		writeError(w, http.StatusBadRequest, "payout id is required")
		return
	}

	if err := h.commands.Delete(r.Context(), operatorID, payoutID); err != nil {
		writeServiceError(w, h.logger, "delete payout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
