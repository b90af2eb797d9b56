package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot periodic observation of a market's rates and oracle price,
// written by the ratesync worker for monitoring. Snapshots are history
// only; query paths always go straight to the protocol.
type RateSnapshot struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Symbol    string          `sql:"size:20;index:symbol_idx" json:"symbol"`
	SupplyAPR decimal.Decimal `sql:"type:decimal(24,18)" json:"supply_apr"`
	BorrowAPR decimal.Decimal `sql:"type:decimal(24,18)" json:"borrow_apr"`
	PriceUSD  decimal.Decimal `sql:"type:decimal(32,18)" json:"price_usd"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IRateSnapshotStore rate snapshot store
type IRateSnapshotStore interface {
	Create(ctx context.Context, snapshot *RateSnapshot) error
	Latest(ctx context.Context, symbol string) (*RateSnapshot, error)
	List(ctx context.Context, symbol string, limit int) ([]*RateSnapshot, error)
}
