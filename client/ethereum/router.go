package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"morpho/core"
)

type router struct {
	client *Client
}

// Router protocol entry points backed by the deployed router contract
func Router(client *Client) core.IRouter {
	return &router{client: client}
}

func (r *router) Supply(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	return r.client.transact(ctx, r.client.cfg.Router, routerABI, "supply", nil,
		market.PoolToken, onBehalf, amount.ToBig())
}

func (r *router) Withdraw(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	return r.client.transact(ctx, r.client.cfg.Router, routerABI, "withdraw", nil,
		market.PoolToken, amount.ToBig())
}

func (r *router) Borrow(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	return r.client.transact(ctx, r.client.cfg.Router, routerABI, "borrow", nil,
		market.PoolToken, amount.ToBig())
}

func (r *router) Repay(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	return r.client.transact(ctx, r.client.cfg.Router, routerABI, "repay", nil,
		market.PoolToken, onBehalf, amount.ToBig())
}

func (r *router) ClaimRewards(ctx context.Context, poolTokens []common.Address) (*uint256.Int, error) {
	// the tx does not surface its return value; snapshot the unclaimed
	// figure first and report that as the claimed amount
	values, err := r.client.call(ctx, r.client.cfg.Lens, lensABI, "getUserUnclaimedRewards",
		poolTokens, r.client.account)
	if err != nil {
		return nil, err
	}

	claimable, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}

	if err := r.client.transact(ctx, r.client.cfg.Router, routerABI, "claimRewards", nil,
		poolTokens, false); err != nil {
		return nil, err
	}

	return claimable, nil
}
