package domain

import "strings"

// Network представляет сеть выплаты
type Network string

const (
	NetworkPolygon Network = "polygon"
	NetworkTRC20   Network = "trc20"
	NetworkERC20   Network = "erc20"
)

// WalletKey представляет имя поля кошелька у мерчанта
type WalletKey string

const (
	WalletKeyUSDTPolygon WalletKey = "usdtPolygonWallet"
	WalletKeyUSDTTrc     WalletKey = "usdtTrcWallet"
	WalletKeyUSDTErc     WalletKey = "usdtErcWallet"
	WalletKeyUSDCPolygon WalletKey = "usdcPolygonWallet"
)

type networkEntry struct {
	network   Network
	walletKey WalletKey
	label     string
}

// Таблица сетей, доступных для выплаты, в порядке отображения.
// USDC-кошелек в выплатах USDT не участвует.
var networkTable = []networkEntry{
	{network: NetworkPolygon, walletKey: WalletKeyUSDTPolygon, label: "USDT Polygon"},
	{network: NetworkTRC20, walletKey: WalletKeyUSDTTrc, label: "USDT TRC-20"},
	{network: NetworkERC20, walletKey: WalletKeyUSDTErc, label: "USDT ERC-20"},
}

// NetworkOption представляет пункт списка выбора сети
type NetworkOption struct {
	Network   Network   `json:"network"`
	WalletKey WalletKey `json:"walletKey"`
	Label     string    `json:"label"`
	Wallet    string    `json:"wallet"`
}

// Valid проверяет, что сеть входит в таблицу сетей
func (n Network) Valid() bool {
	_, ok := lookupNetwork(n)
	return ok
}

// Label возвращает отображаемое название сети
func (n Network) Label() string {
	if e, ok := lookupNetwork(n); ok {
		return e.label
	}
	return string(n)
}

// ParseNetwork разбирает сеть из строки без учета регистра
func ParseNetwork(s string) (Network, bool) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", false
	}
	return n, true
}

// Wallet возвращает адрес кошелька по имени поля
func (w MerchantWallets) Wallet(key WalletKey) string {
	switch key {
	case WalletKeyUSDTPolygon:
		return w.USDTPolygonWallet
	case WalletKeyUSDTTrc:
		return w.USDTTrcWallet
	case WalletKeyUSDTErc:
		return w.USDTErcWallet
	case WalletKeyUSDCPolygon:
		return w.USDCPolygonWallet
	default:
		return ""
	}
}

// AvailableNetworks возвращает сети, для которых у мерчанта настроен кошелек
func AvailableNetworks(m *MerchantAggregate) []NetworkOption {
	options := make([]NetworkOption, 0, len(networkTable))
	for _, e := range networkTable {
		wallet := strings.TrimSpace(m.Wallet(e.walletKey))
		if wallet == "" {
			continue
		}
		options = append(options, NetworkOption{
			Network:   e.network,
			WalletKey: e.walletKey,
			Label:     e.label,
			Wallet:    wallet,
		})
	}
	return options
}

// ResolveWallet возвращает адрес кошелька мерчанта для сети
func ResolveWallet(m *MerchantAggregate, network Network) (string, bool) {
	for _, opt := range AvailableNetworks(m) {
		if opt.Network == network {
			return opt.Wallet, true
		}
	}
	return "", false
}

func lookupNetwork(n Network) (networkEntry, bool) {
	for _, e := range networkTable {
		if e.network == n {
			return e, true
		}
	}
	return networkEntry{}, false
}
