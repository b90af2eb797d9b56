package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ILens read-only protocol query service. Balances are native-decimal,
// rates are wad-scaled per block regardless of backend (the Aave client
// converts from per-year ray before returning).
type ILens interface {
	SupplyBalance(ctx context.Context, market *Market, account common.Address) (*Position, error)
	BorrowBalance(ctx context.Context, market *Market, account common.Address) (*Position, error)

	AverageSupplyRatePerBlock(ctx context.Context, market *Market) (*uint256.Int, error)
	AverageBorrowRatePerBlock(ctx context.Context, market *Market) (*uint256.Int, error)

	UserSupplyRatePerBlock(ctx context.Context, market *Market, account common.Address) (*uint256.Int, error)
	UserBorrowRatePerBlock(ctx context.Context, market *Market, account common.Address) (*uint256.Int, error)
	NextUserSupplyRatePerBlock(ctx context.Context, market *Market, account common.Address, amount *uint256.Int) (*uint256.Int, error)
	NextUserBorrowRatePerBlock(ctx context.Context, market *Market, account common.Address, amount *uint256.Int) (*uint256.Int, error)

	// HealthFactor wad-scaled; the protocol enumerates every market the
	// account has entered.
	HealthFactor(ctx context.Context, account common.Address) (*uint256.Int, error)
}

// IRewardsLens unclaimed incentive queries. Figures are recomputed by the
// protocol on every call; no accounting is kept here.
type IRewardsLens interface {
	Unclaimed(ctx context.Context, account common.Address, poolTokens []common.Address) (*uint256.Int, error)
}
