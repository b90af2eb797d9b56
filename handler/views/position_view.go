package views

import (
	"github.com/shopspring/decimal"

	"morpho/core"
	"morpho/pkg/fixedpoint"
)

// Balance one side of a position in underlying units and USD
type Balance struct {
	OnPool    decimal.Decimal `json:"on_pool"`
	P2P       decimal.Decimal `json:"p2p"`
	OnPoolUSD decimal.Decimal `json:"on_pool_usd"`
	P2PUSD    decimal.Decimal `json:"p2p_usd"`
}

// Position supply and borrow balances of one account in one market
type Position struct {
	Symbol string  `json:"symbol"`
	Supply Balance `json:"supply"`
	Borrow Balance `json:"borrow"`
}

// NewBalance native amounts at the market's decimals, USD at 18
func NewBalance(market *core.Market, native, usd *core.Position) Balance {
	return Balance{
		OnPool:    fixedpoint.ToDecimal(native.OnPool, market.Decimals),
		P2P:       fixedpoint.ToDecimal(native.P2P, market.Decimals),
		OnPoolUSD: fixedpoint.ToDecimal(usd.OnPool, 18),
		P2PUSD:    fixedpoint.ToDecimal(usd.P2P, 18),
	}
}

// Rates per-block and annualized rates for one market
type Rates struct {
	Symbol             string          `json:"symbol"`
	SupplyRatePerBlock decimal.Decimal `json:"supply_rate_per_block"`
	BorrowRatePerBlock decimal.Decimal `json:"borrow_rate_per_block"`
	SupplyAPR          decimal.Decimal `json:"supply_apr"`
	BorrowAPR          decimal.Decimal `json:"borrow_apr"`
}
