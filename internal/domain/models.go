package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GatewayBreakdown представляет долю одного платежного шлюза в агрегате мерчанта
type GatewayBreakdown struct {
	Gateway                   string          `json:"gateway"`
	Count                     int64           `json:"count"`
	AmountUSDT                decimal.Decimal `json:"amountUSDT"`
	AmountAfterCommissionUSDT decimal.Decimal `json:"amountAfterCommissionUSDT"`
	CommissionPercent         decimal.Decimal `json:"commissionPercent"`
}

// MerchantWallets содержит адреса кошельков мерчанта по сетям.
// Пустое значение означает, что кошелек не настроен.
type MerchantWallets struct {
	USDTPolygonWallet string `json:"usdtPolygonWallet"`
	USDTTrcWallet     string `json:"usdtTrcWallet"`
	USDTErcWallet     string `json:"usdtErcWallet"`
	USDCPolygonWallet string `json:"usdcPolygonWallet"`
}

// MerchantAggregate представляет невыплаченный заработок мерчанта на момент запроса.
// Приходит от внешнего сервиса целиком и локально не изменяется.
type MerchantAggregate struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	TelegramID  string `json:"telegramId"`
	MerchantURL string `json:"merchantUrl"`

	MerchantWallets

	TotalAmountUSDT                decimal.Decimal    `json:"totalAmountUSDT"`
	TotalAmountAfterCommissionUSDT decimal.Decimal    `json:"totalAmountAfterCommissionUSDT"` // Потолок для любой выплаты
	PaymentsCount                  int64              `json:"paymentsCount"`
	OldestPaymentDate              *time.Time         `json:"oldestPaymentDate,omitempty"`
	GatewayBreakdown               []GatewayBreakdown `json:"gatewayBreakdown"`
}

// BreakdownConsistent сообщает, совпадает ли сумма по шлюзам с итоговой суммой к выплате.
// Используется только для диагностики.
func (m *MerchantAggregate) BreakdownConsistent() bool {
	sum := decimal.Zero
	for _, g := range m.GatewayBreakdown {
		sum = sum.Add(g.AmountAfterCommissionUSDT)
	}
	return sum.Equal(m.TotalAmountAfterCommissionUSDT)
}

// Payout представляет одну выплату
type Payout struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shopId"`
	ShopName     string          `json:"shopName"`
	ShopUsername string          `json:"shopUsername"`
	Amount       decimal.Decimal `json:"amount"`
	Network      Network         `json:"network"`
	Wallet       string          `json:"wallet,omitempty"`
	// WalletAddressLegacy заполняется у старых записей вместо Wallet
	WalletAddressLegacy string       `json:"walletAddress,omitempty"`
	Status              PayoutStatus `json:"status"`
	CreatedAt           time.Time    `json:"createdAt"`
	PaidAt              *time.Time   `json:"paidAt,omitempty"`
	PeriodFrom          *time.Time   `json:"periodFrom,omitempty"`
	PeriodTo            *time.Time   `json:"periodTo,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	TxID                string       `json:"txid,omitempty"`
}

// WalletAddress возвращает адрес выплаты, предпочитая Wallet устаревшему полю
func (p *Payout) WalletAddress() string {
	if p.Wallet != "" {
		return p.Wallet
	}
	return p.WalletAddressLegacy
}

// PayoutDraft представляет черновик выплаты из формы оператора.
// Никогда не сохраняется.
type PayoutDraft struct {
	ShopID     string
	Amount     string
	Network    Network
	Wallet     string
	Notes      string
	TxID       string
	PeriodFrom *time.Time
	PeriodTo   *time.Time
}

// CreatePayoutCommand представляет проверенный и нормализованный запрос на выплату
type CreatePayoutCommand struct {
	ShopID     string
	Amount     decimal.Decimal
	Network    Network
	Wallet     string
	Notes      string
	TxID       string
	PeriodFrom *time.Time
	PeriodTo   *time.Time
}

// Page представляет одну страницу результатов запроса
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// Stats представляет сводку для шапки консоли
type Stats struct {
	PendingPayoutsCount  int64           `json:"pendingPayoutsCount"`
	PendingAmountUSDT    decimal.Decimal `json:"pendingAmountUSDT"`
	CompletedAmountUSDT  decimal.Decimal `json:"completedAmountUSDT"`
	MerchantsWithBalance int64           `json:"merchantsWithBalance"`
	TotalPayableUSDT     decimal.Decimal `json:"totalPayableUSDT"`
}

// AuditAction представляет тип записи журнала команд
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionDelete  AuditAction = "delete"
	AuditActionSettled AuditAction = "settled"
)

// AuditOutcome представляет результат команды
type AuditOutcome string

const (
	AuditOutcomeAccepted AuditOutcome = "accepted"
	AuditOutcomeRejected AuditOutcome = "rejected"
	AuditOutcomeFailed   AuditOutcome = "failed"
)

// AuditRecord представляет запись журнала команд над выплатами
type AuditRecord struct {
	ID         int64           `json:"id"`
	OperatorID string          `json:"operatorId"`
	Action     AuditAction     `json:"action"`
	ShopID     string          `json:"shopId,omitempty"`
	PayoutID   string          `json:"payoutId,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Network    Network         `json:"network,omitempty"`
	Outcome    AuditOutcome    `json:"outcome"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
