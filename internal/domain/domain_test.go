package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableNetworks(t *testing.T) {
	m := &MerchantAggregate{
		MerchantWallets: MerchantWallets{
			USDTPolygonWallet: "",
			USDTTrcWallet:     "T111",
			USDTErcWallet:     "  ",
			USDCPolygonWallet: "0xusdc",
		},
	}

	options := AvailableNetworks(m)
	require.Len(t, options, 1)
	assert.Equal(t, NetworkTRC20, options[0].Network)
	assert.Equal(t, WalletKeyUSDTTrc, options[0].WalletKey)
	assert.Equal(t, "T111", options[0].Wallet)

	_, ok := ResolveWallet(m, NetworkPolygon)
	assert.False(t, ok)
}

func TestParseNetwork(t *testing.T) {
	n, ok := ParseNetwork(" ERC20 ")
	assert.True(t, ok)
	assert.Equal(t, NetworkERC20, n)

	_, ok = ParseNetwork("bep20")
	assert.False(t, ok)
	assert.Equal(t, "USDT TRC-20", NetworkTRC20.Label())
}

func TestPayoutStatus_Presentation(t *testing.T) {
	p, err := PayoutStatusPending.Presentation()
	require.NoError(t, err)
	assert.True(t, p.Deletable)
	assert.False(t, p.Terminal)

	p, err = PayoutStatusCompleted.Presentation()
	require.NoError(t, err)
	assert.False(t, p.Deletable)
	assert.True(t, p.Terminal)

	p, err = PayoutStatusRejected.Presentation()
	require.NoError(t, err)
	assert.Equal(t, TreatmentDanger, p.Treatment)

	_, err = PayoutStatus("CANCELLED").Presentation()
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(PayoutStatusPending, PayoutStatusCompleted))
	assert.True(t, CanTransition(PayoutStatusPending, PayoutStatusRejected))
	assert.False(t, CanTransition(PayoutStatusPending, PayoutStatusPending))
	assert.False(t, CanTransition(PayoutStatusCompleted, PayoutStatusRejected))
	assert.False(t, CanTransition(PayoutStatusRejected, PayoutStatusPending))
}

func TestPayout_WalletAddress(t *testing.T) {
	p := &Payout{Wallet: "new", WalletAddressLegacy: "old"}
	assert.Equal(t, "new", p.WalletAddress())

	p = &Payout{WalletAddressLegacy: "old"}
	assert.Equal(t, "old", p.WalletAddress())
}

func TestMerchantAggregate_BreakdownConsistent(t *testing.T) {
	m := &MerchantAggregate{
		TotalAmountAfterCommissionUSDT: decimal.RequireFromString("150.5"),
		GatewayBreakdown: []GatewayBreakdown{
			{Gateway: "cards", AmountAfterCommissionUSDT: decimal.RequireFromString("100.25")},
			{Gateway: "crypto", AmountAfterCommissionUSDT: decimal.RequireFromString("50.25")},
		},
	}
	assert.True(t, m.BreakdownConsistent())

	m.TotalAmountAfterCommissionUSDT = decimal.NewFromInt(151)
	assert.False(t, m.BreakdownConsistent())
}

func TestFilters_KeyOmitsBlanks(t *testing.T) {
	f := PayoutFilter{Page: 2, Limit: 20, Status: PayoutStatusPending}
	assert.Equal(t, "limit=20&page=2&status=PENDING", f.Key())

	m := MerchantFilter{Page: 1, Limit: 20, Search: "a b"}
	assert.Equal(t, "limit=20&page=1&search=a+b", m.Key())
}
