package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/payout-console/internal/domain"
	"github.com/avc/payout-console/internal/service"
	"github.com/avc/payout-console/internal/validator"
	"go.uber.org/zap"
)

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error  string           `json:"error"`
	Reason validator.Reason `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError отображает ошибку сервисного слоя в HTTP ответ.
// Отказ внешнего сервиса передается оператору дословно.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	var (
		validationErr *validator.ValidationError
		commandErr    *service.CommandError
		queryErr      *service.QueryError
	)

	switch {
	case errors.As(err, &validationErr):
		_ = writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  validationErr.Message,
			Reason: validationErr.Reason,
		})
	case errors.Is(err, domain.ErrMerchantNotFound), errors.Is(err, domain.ErrPayoutNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrCommandInFlight):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, domain.ErrSuperseded):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrCommandUnconfirmed):
		logger.Warn("ledger response unreadable after commit", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusBadGateway, domain.ErrCommandUnconfirmed.Error())
	case errors.As(err, &commandErr):
		status := http.StatusBadGateway
		if commandErr.Rejected() {
			status = http.StatusConflict
		}
		writeError(w, status, commandErr.Message)
	case errors.As(err, &queryErr):
		logger.Warn("ledger query failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error("request failed", zap.String("op", op), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
