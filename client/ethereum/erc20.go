package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"morpho/core"
)

type erc20 struct {
	client *Client
}

// ERC20 token allowance/balance surface
func ERC20(client *Client) core.IERC20 {
	return &erc20{client: client}
}

func (t *erc20) Approve(ctx context.Context, token, spender common.Address, amount *uint256.Int) error {
	return t.client.transact(ctx, token, erc20ABI, "approve", nil, spender, amount.ToBig())
}

func (t *erc20) Allowance(ctx context.Context, token, owner, spender common.Address) (*uint256.Int, error) {
	values, err := t.client.call(ctx, token, erc20ABI, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return asUint256(values[0])
}

func (t *erc20) BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error) {
	values, err := t.client.call(ctx, token, erc20ABI, "balanceOf", account)
	if err != nil {
		return nil, err
	}

	return asUint256(values[0])
}

type wrappedNative struct {
	client *Client
}

// WrappedNative wrap/unwrap of the chain's native asset, 1:1
func WrappedNative(client *Client) core.IWrappedNative {
	return &wrappedNative{client: client}
}

func (w *wrappedNative) Wrap(ctx context.Context, amount *uint256.Int) error {
	return w.client.transact(ctx, w.client.cfg.WrappedNative, wethABI, "deposit", amount.ToBig())
}

func (w *wrappedNative) Unwrap(ctx context.Context, amount *uint256.Int) error {
	return w.client.transact(ctx, w.client.cfg.WrappedNative, wethABI, "withdraw", nil, amount.ToBig())
}
