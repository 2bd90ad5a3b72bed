package domain

import (
	"net/url"
	"strconv"
)

// DateLayout - формат календарной даты в фильтрах
const DateLayout = "2006-01-02"

// MerchantFilter представляет параметры запроса агрегатов мерчантов.
// Пустые строковые поля означают отсутствие фильтра.
type MerchantFilter struct {
	Page      int
	Limit     int
	Search    string
	MinAmount string
}

// Values кодирует фильтр в параметры запроса, пропуская пустые поля
func (f MerchantFilter) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	setIfNotEmpty(v, "search", f.Search)
	setIfNotEmpty(v, "minAmount", f.MinAmount)
	return v
}

// Key возвращает ключ кэша. Равные фильтры дают равные ключи.
func (f MerchantFilter) Key() string {
	return f.Values().Encode()
}

// PayoutFilter представляет параметры запроса истории выплат.
// Даты хранятся в формате yyyy-MM-dd.
type PayoutFilter struct {
	Page       int
	Limit      int
	Search     string
	Network    Network
	Status     PayoutStatus
	PeriodFrom string
	PeriodTo   string
}

// Values кодирует фильтр в параметры запроса, пропуская пустые поля
func (f PayoutFilter) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	setIfNotEmpty(v, "search", f.Search)
	setIfNotEmpty(v, "network", string(f.Network))
	setIfNotEmpty(v, "status", string(f.Status))
	setIfNotEmpty(v, "periodFrom", f.PeriodFrom)
	setIfNotEmpty(v, "periodTo", f.PeriodTo)
	return v
}

// Key возвращает ключ кэша. Равные фильтры дают равные ключи.
func (f PayoutFilter) Key() string {
	return f.Values().Encode()
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
