// Package filter преобразует состояние элементов фильтрации консоли
// в неизменяемые параметры запросов к мерчантам и выплатам.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/payout-console/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultPageSize используется, если размер страницы не задан
const DefaultPageSize = 20

// Selection представляет текущее состояние фильтров в консоли.
// Нулевые значения означают, что фильтр не выбран.
type Selection struct {
	Search     string
	MinAmount  string
	Network    string
	Status     string
	PeriodFrom time.Time
	PeriodTo   time.Time
	Page       int
}

// Builder строит фильтры с фиксированным размером страницы
type Builder struct {
	pageSize int
}

// NewBuilder создает новый Builder
func NewBuilder(pageSize int) *Builder {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Builder{pageSize: pageSize}
}

// PageSize возвращает размер страницы
func (b *Builder) PageSize() int {
	return b.pageSize
}

// Merchants строит фильтр агрегатов мерчантов
func (b *Builder) Merchants(sel Selection) domain.MerchantFilter {
	return domain.MerchantFilter{
		Page:      normalizePage(sel.Page),
		Limit:     b.pageSize,
		Search:    strings.TrimSpace(sel.Search),
		MinAmount: normalizeAmount(sel.MinAmount),
	}
}

// Payouts строит фильтр истории выплат
func (b *Builder) Payouts(sel Selection) domain.PayoutFilter {
	f := domain.PayoutFilter{
		Page:       normalizePage(sel.Page),
		Limit:      b.pageSize,
		Search:     strings.TrimSpace(sel.Search),
		PeriodFrom: formatDate(sel.PeriodFrom),
		PeriodTo:   formatDate(sel.PeriodTo),
	}

	if network, ok := domain.ParseNetwork(sel.Network); ok {
		f.Network = network
	}

	status := domain.PayoutStatus(strings.ToUpper(strings.TrimSpace(sel.Status)))
	if status.Valid() {
		f.Status = status
	}

	return f
}

// SelectionFromQuery разбирает состояние фильтров из строки запроса.
// Некорректные значения отбрасываются.
func SelectionFromQuery(q url.Values) Selection {
	sel := Selection{
		Search:    q.Get("search"),
		MinAmount: q.Get("minAmount"),
		Network:   q.Get("network"),
		Status:    q.Get("status"),
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		sel.Page = page
	}
	if t, ok := ParseDate(q.Get("periodFrom")); ok {
		sel.PeriodFrom = t
	}
	if t, ok := ParseDate(q.Get("periodTo")); ok {
		sel.PeriodTo = t
	}

	return sel
}

// ParseDate разбирает календарную дату или полную метку времени RFC 3339
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// normalizeAmount приводит сумму к каноническому виду, чтобы "100.0" и "100" давали один ключ
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return ""
	}
	return d.String()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
