// Package validator проверяет черновик выплаты против агрегата мерчанта
// до отправки команды во внешний сервис.
package validator

import (
	"strings"
	"time"

	"github.com/avc/payout-console/internal/domain"
	"github.com/shopspring/decimal"
)

// Reason представляет конкретную причину отказа
type Reason string

const (
	ReasonMissingRequiredField       Reason = "MissingRequiredField"
	ReasonInvalidAmount              Reason = "InvalidAmount"
	ReasonIncompletePeriod           Reason = "IncompletePeriod"
	ReasonInvalidPeriodOrder         Reason = "InvalidPeriodOrder"
	ReasonFuturePeriodEnd            Reason = "FuturePeriodEnd"
	ReasonNetworkWalletNotConfigured Reason = "NetworkWalletNotConfigured"
)

// ValidationError представляет отказ в проверке черновика
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Ошибки проверки. Возвращаются как есть, сравнивать через errors.Is.
var (
	ErrMissingRequiredField = &ValidationError{
		Reason:  ReasonMissingRequiredField,
		Message: "network and amount are required",
	}
	ErrInvalidAmount = &ValidationError{
		Reason:  ReasonInvalidAmount,
		Message: "amount must be positive and not exceed the payable balance",
	}
	ErrIncompletePeriod = &ValidationError{
		Reason:  ReasonIncompletePeriod,
		Message: "period requires both start and end dates",
	}
	ErrInvalidPeriodOrder = &ValidationError{
		Reason:  ReasonInvalidPeriodOrder,
		Message: "period start must be before period end",
	}
	ErrFuturePeriodEnd = &ValidationError{
		Reason:  ReasonFuturePeriodEnd,
		Message: "period end cannot be in the future",
	}
	ErrNetworkWalletNotConfigured = &ValidationError{
		Reason:  ReasonNetworkWalletNotConfigured,
		Message: "merchant has no wallet configured for the selected network",
	}
)

// state накапливает разобранные значения между проверками
type state struct {
	merchant *domain.MerchantAggregate
	draft    domain.PayoutDraft
	now      time.Time

	amount decimal.Decimal
	wallet string
}

type check func(s *state) error

// Порядок проверок важен: возвращается первая сработавшая
var checks = []check{
	checkRequiredFields,
	checkAmount,
	checkPeriodPresence,
	checkPeriodOrder,
	checkPeriodEnd,
	checkWallet,
}

// Validator проверяет черновики выплат
type Validator struct {
	now func() time.Time
}

// New создает Validator. Если now равен nil, используется time.Now.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate проверяет черновик и возвращает нормализованную команду создания выплаты
func (v *Validator) Validate(merchant *domain.MerchantAggregate, draft domain.PayoutDraft) (domain.CreatePayoutCommand, error) {
	s := &state{
		merchant: merchant,
		draft:    draft,
		now:      v.now(),
	}

	for _, c := range checks {
		if err := c(s); err != nil {
			return domain.CreatePayoutCommand{}, err
		}
	}

	return normalize(s), nil
}

func checkRequiredFields(s *state) error {
	if strings.TrimSpace(string(s.draft.Network)) == "" {
		return ErrMissingRequiredField
	}
	raw := strings.TrimSpace(s.draft.Amount)
	if raw == "" {
		return ErrMissingRequiredField
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return ErrMissingRequiredField
	}
	s.amount = amount
	return nil
}

func checkAmount(s *state) error {
	if !s.amount.IsPositive() || s.amount.GreaterThan(s.merchant.TotalAmountAfterCommissionUSDT) {
		return ErrInvalidAmount
	}
	return nil
}

func checkPeriodPresence(s *state) error {
	if (s.draft.PeriodFrom == nil) != (s.draft.PeriodTo == nil) {
		return ErrIncompletePeriod
	}
	return nil
}

func checkPeriodOrder(s *state) error {
	if s.draft.PeriodFrom != nil && s.draft.PeriodTo != nil && !s.draft.PeriodFrom.Before(*s.draft.PeriodTo) {
		return ErrInvalidPeriodOrder
	}
	return nil
}

func checkPeriodEnd(s *state) error {
	if s.draft.PeriodTo != nil && s.draft.PeriodTo.After(s.now) {
		return ErrFuturePeriodEnd
	}
	return nil
}

func checkWallet(s *state) error {
	network := domain.Network(strings.ToLower(strings.TrimSpace(string(s.draft.Network))))
	wallet, ok := domain.ResolveWallet(s.merchant, network)
	if !ok {
		return ErrNetworkWalletNotConfigured
	}
	s.draft.Network = network
	s.wallet = wallet
	return nil
}

func normalize(s *state) domain.CreatePayoutCommand {
	cmd := domain.CreatePayoutCommand{
		ShopID:  s.merchant.ID,
		Amount:  s.amount,
		Network: s.draft.Network,
		Wallet:  s.wallet,
		Notes:   strings.TrimSpace(s.draft.Notes),
		TxID:    strings.TrimSpace(s.draft.TxID),
	}

	// Период передается только целиком
	if s.draft.PeriodFrom != nil && s.draft.PeriodTo != nil {
		from := s.draft.PeriodFrom.UTC()
		to := s.draft.PeriodTo.UTC()
		cmd.PeriodFrom = &from
		cmd.PeriodTo = &to
	}

	return cmd
}
