package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// IRouter state-changing protocol entry points. Calls either take full
// effect or fail; failures carry the protocol error unmodified.
type IRouter interface {
	Supply(ctx context.Context, market *Market, onBehalf common.Address, amount *uint256.Int) error
	Withdraw(ctx context.Context, market *Market, amount *uint256.Int) error
	Borrow(ctx context.Context, market *Market, amount *uint256.Int) error
	Repay(ctx context.Context, market *Market, onBehalf common.Address, amount *uint256.Int) error

	// ClaimRewards triggers the protocol to transfer accrued incentives
	// for the given markets; returns the claimed amount.
	ClaimRewards(ctx context.Context, poolTokens []common.Address) (*uint256.Int, error)
}

// IPriceOracle current underlying price in the backend's own scaling:
// 36 - underlyingDecimals decimals for Compound-style oracles, fixed 18
// for Aave-style. No staleness check; freshness is the oracle's problem.
type IPriceOracle interface {
	Price(ctx context.Context, market *Market) (*uint256.Int, error)
}

// IERC20 allowance and balance surface of the underlying assets
type IERC20 interface {
	Approve(ctx context.Context, token, spender common.Address, amount *uint256.Int) error
	Allowance(ctx context.Context, token, owner, spender common.Address) (*uint256.Int, error)
	BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error)
}

// IWrappedNative 1:1 synchronous wrap/unwrap of the native asset
type IWrappedNative interface {
	Wrap(ctx context.Context, amount *uint256.Int) error
	Unwrap(ctx context.Context, amount *uint256.Int) error
}
