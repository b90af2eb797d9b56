package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Position how much of an account's supply or borrow is matched
// peer-to-peer versus resting in the pooled market. Amounts are in the
// underlying asset's native decimals (or 18-decimal USD after conversion).
// Always read fresh from the protocol, never cached.
type Position struct {
	OnPool *uint256.Int `json:"on_pool"`
	P2P    *uint256.Int `json:"p2p"`
}

// Total onPool + peerToPeer
func (p *Position) Total() *uint256.Int {
	return new(uint256.Int).Add(p.OnPool, p.P2P)
}

// IPositionService read-only position and rate queries. Every call
// re-reads protocol state; two sequential reads may reflect different
// blocks.
type IPositionService interface {
	SupplyBalance(ctx context.Context, market *Market, account common.Address) (*Position, error)
	BorrowBalance(ctx context.Context, market *Market, account common.Address) (*Position, error)
	// SupplyBalanceUSD converts each component to an 18-decimal USD value
	// using the backend's oracle convention.
	SupplyBalanceUSD(ctx context.Context, market *Market, account common.Address) (*Position, error)
	BorrowBalanceUSD(ctx context.Context, market *Market, account common.Address) (*Position, error)
	// ValueUSD 18-decimal USD value of a native-decimal amount at the
	// current oracle price.
	ValueUSD(ctx context.Context, market *Market, amount *uint256.Int) (*uint256.Int, error)

	AverageSupplyRatePerBlock(ctx context.Context, market *Market) (*uint256.Int, error)
	AverageBorrowRatePerBlock(ctx context.Context, market *Market) (*uint256.Int, error)
	AverageSupplyAPR(ctx context.Context, market *Market) (*uint256.Int, error)
	AverageBorrowAPR(ctx context.Context, market *Market) (*uint256.Int, error)

	UserSupplyRatePerBlock(ctx context.Context, market *Market, account common.Address) (*uint256.Int, error)
	UserBorrowRatePerBlock(ctx context.Context, market *Market, account common.Address) (*uint256.Int, error)
	// NextUserSupplyRatePerBlock rate the account would experience after
	// hypothetically supplying amount more. Advisory only.
	NextUserSupplyRatePerBlock(ctx context.Context, market *Market, account common.Address, amount *uint256.Int) (*uint256.Int, error)
	NextUserBorrowRatePerBlock(ctx context.Context, market *Market, account common.Address, amount *uint256.Int) (*uint256.Int, error)

	// ExpectedSupplyInterest linear estimate over nbBlocks without
	// compounding; real accrual compounds each block, so this undershoots.
	ExpectedSupplyInterest(ctx context.Context, market *Market, account common.Address, nbBlocks uint64) (*uint256.Int, error)
	ExpectedBorrowInterest(ctx context.Context, market *Market, account common.Address, nbBlocks uint64) (*uint256.Int, error)

	// IsApproxLiquidatable true when the health factor is at or below the
	// caller-supplied wad threshold. Positions can move between the health
	// factor read and any action taken on it.
	IsApproxLiquidatable(ctx context.Context, account common.Address, threshold *uint256.Int) (bool, error)
	HealthFactor(ctx context.Context, account common.Address) (*uint256.Int, error)
}
