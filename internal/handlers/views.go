package handlers

import (
	"time"

	"github.com/avc/payout-console/internal/domain"
	"github.com/shopspring/decimal"
)

// TablePage представляет страницу таблицы консоли.
// В сводной странице Error заполняется вместо строк, если таблица недоступна.
type TablePage[T any] struct {
	Items      []T    `json:"items"`
	TotalCount int    `json:"totalCount"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Error      string `json:"error,omitempty"`
}

func newTablePage[S, T any](page *domain.Page[S], row func(*S) T) *TablePage[T] {
	items := make([]T, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, row(&page.Items[i]))
	}
	return &TablePage[T]{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
}

// MerchantRow представляет строку таблицы мерчантов
type MerchantRow struct {
	*domain.MerchantAggregate
	AvailableNetworks []domain.NetworkOption `json:"availableNetworks"`
}

func merchantRow(m *domain.MerchantAggregate) MerchantRow {
	return MerchantRow{
		MerchantAggregate: m,
		AvailableNetworks: domain.AvailableNetworks(m),
	}
}

// CopyTarget представляет значение, которое консоль позволяет скопировать
type CopyTarget struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PayoutRow представляет строку истории выплат.
// Для неизвестного статуса Presentation пуст, а DisplayFault описывает ошибку.
type PayoutRow struct {
	ID           string                     `json:"id"`
	ShopID       string                     `json:"shopId"`
	ShopName     string                     `json:"shopName"`
	ShopUsername string                     `json:"shopUsername"`
	Amount       decimal.Decimal            `json:"amount"`
	Network      domain.Network             `json:"network"`
	NetworkLabel string                     `json:"networkLabel"`
	Wallet       string                     `json:"wallet"`
	Status       domain.PayoutStatus        `json:"status"`
	Presentation *domain.StatusPresentation `json:"presentation,omitempty"`
	DisplayFault string                     `json:"displayFault,omitempty"`
	CreatedAt    time.Time                  `json:"createdAt"`
	PaidAt       *time.Time                 `json:"paidAt,omitempty"`
	PeriodFrom   *time.Time                 `json:"periodFrom,omitempty"`
	PeriodTo     *time.Time                 `json:"periodTo,omitempty"`
	Notes        string                     `json:"notes,omitempty"`
	TxID         string                     `json:"txid,omitempty"`
	CopyTargets  []CopyTarget               `json:"copyTargets"`
}

func payoutRow(p *domain.Payout) PayoutRow {
	row := PayoutRow{
		ID:           p.ID,
		ShopID:       p.ShopID,
		ShopName:     p.ShopName,
		ShopUsername: p.ShopUsername,
		Amount:       p.Amount,
		Network:      p.Network,
		NetworkLabel: p.Network.Label(),
		Wallet:       p.WalletAddress(),
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		PaidAt:       p.PaidAt,
		PeriodFrom:   p.PeriodFrom,
		PeriodTo:     p.PeriodTo,
		Notes:        p.Notes,
		TxID:         p.TxID,
		CopyTargets:  []CopyTarget{},
	}

	if presentation, err := p.Status.Presentation(); err != nil {
		row.DisplayFault = err.Error()
	} else {
		row.Presentation = &presentation
	}

	if row.Wallet != "" {
		row.CopyTargets = append(row.CopyTargets, CopyTarget{Field: "wallet", Value: row.Wallet})
	}
	if row.TxID != "" {
		row.CopyTargets = append(row.CopyTargets, CopyTarget{Field: "txid", Value: row.TxID})
	}

	return row
}

// CommandView представляет проверенную команду создания выплаты
type CommandView struct {
	ShopID     string          `json:"shopId"`
	Amount     decimal.Decimal `json:"amount"`
	Network    domain.Network  `json:"network"`
	Wallet     string          `json:"wallet"`
	Notes      string          `json:"notes,omitempty"`
	TxID       string          `json:"txid,omitempty"`
	PeriodFrom *time.Time      `json:"periodFrom,omitempty"`
	PeriodTo   *time.Time      `json:"periodTo,omitempty"`
}

func commandView(cmd domain.CreatePayoutCommand) CommandView {
	return CommandView{
		ShopID:     cmd.ShopID,
		Amount:     cmd.Amount,
		Network:    cmd.Network,
		Wallet:     cmd.Wallet,
		Notes:      cmd.Notes,
		TxID:       cmd.TxID,
		PeriodFrom: cmd.PeriodFrom,
		PeriodTo:   cmd.PeriodTo,
	}
}
