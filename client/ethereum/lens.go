package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"morpho/core"
	"morpho/internal/morpho"
	"morpho/pkg/fixedpoint"
)

type lens struct {
	client *Client
}

// Lens protocol query service backed by the deployed lens contract
func Lens(client *Client) core.ILens {
	return &lens{client: client}
}

func (l *lens) balance(ctx context.Context, method string, market *core.Market, account common.Address) (*core.Position, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, method, market.PoolToken, account)
	if err != nil {
		return nil, err
	}

	onPool, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}
	p2p, err := asUint256(values[1])
	if err != nil {
		return nil, err
	}

	return &core.Position{OnPool: onPool, P2P: p2p}, nil
}

func (l *lens) SupplyBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return l.balance(ctx, "getCurrentSupplyBalanceInOf", market, account)
}

func (l *lens) BorrowBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return l.balance(ctx, "getCurrentBorrowBalanceInOf", market, account)
}

// method names differ per backend; the Aave lens reports per-year ray
// rates which get converted to the wad per-block convention here
func (l *lens) rateMethod(base string) string {
	if l.client.cfg.Backend == core.BackendAave {
		return base + "PerYear"
	}
	return base + "PerBlock"
}

func (l *lens) toPerBlock(rate *uint256.Int) (*uint256.Int, error) {
	if l.client.cfg.Backend == core.BackendAave {
		return morpho.PerBlockFromYearlyRay(rate, l.client.cfg.BlocksPerYear)
	}
	return rate, nil
}

func (l *lens) averageRate(ctx context.Context, base string, market *core.Market) (*uint256.Int, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, l.rateMethod(base), market.PoolToken)
	if err != nil {
		return nil, err
	}

	rate, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}

	return l.toPerBlock(rate)
}

func (l *lens) AverageSupplyRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return l.averageRate(ctx, "getAverageSupplyRate", market)
}

func (l *lens) AverageBorrowRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return l.averageRate(ctx, "getAverageBorrowRate", market)
}

func (l *lens) userRate(ctx context.Context, base string, market *core.Market, account common.Address) (*uint256.Int, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, l.rateMethod(base), market.PoolToken, account)
	if err != nil {
		return nil, err
	}

	rate, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}

	return l.toPerBlock(rate)
}

func (l *lens) UserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return l.userRate(ctx, "getCurrentUserSupplyRate", market, account)
}

func (l *lens) UserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return l.userRate(ctx, "getCurrentUserBorrowRate", market, account)
}

func (l *lens) nextRate(ctx context.Context, base string, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, l.rateMethod(base), market.PoolToken, account, amount.ToBig())
	if err != nil {
		return nil, err
	}

	rate, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}

	return l.toPerBlock(rate)
}

func (l *lens) NextUserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return l.nextRate(ctx, "getNextUserSupplyRate", market, account, amount)
}

func (l *lens) NextUserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return l.nextRate(ctx, "getNextUserBorrowRate", market, account, amount)
}

func (l *lens) HealthFactor(ctx context.Context, account common.Address) (*uint256.Int, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, "getUserHealthFactor", account)
	if err != nil {
		return nil, err
	}

	return asUint256(values[0])
}

// Unclaimed implements core.IRewardsLens on the same lens contract
func (l *lens) Unclaimed(ctx context.Context, account common.Address, poolTokens []common.Address) (*uint256.Int, error) {
	values, err := l.client.call(ctx, l.client.cfg.Lens, lensABI, "getUserUnclaimedRewards", poolTokens, account)
	if err != nil {
		return nil, err
	}

	return asUint256(values[0])
}

// RewardsLens rewards queries share the lens deployment
func RewardsLens(client *Client) core.IRewardsLens {
	return &lens{client: client}
}

func asUint256(v interface{}) (*uint256.Int, error) {
	b, ok := v.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected abi output type %T", v)
	}
	return fixedpoint.FromBig(b)
}
