package views

import (
	"github.com/shopspring/decimal"

	"morpho/core"
)

// Market market view with annualized rates rendered human-readable
type Market struct {
	*core.Market
	SupplyAPR decimal.Decimal `json:"supply_apr"`
	BorrowAPR decimal.Decimal `json:"borrow_apr"`
}
