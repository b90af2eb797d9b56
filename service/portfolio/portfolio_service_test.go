package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"morpho/core"
)

var (
	routerAddr = common.HexToAddress("0x8888f1f195AFa192CfeE860698584c030f4c9dB1")
	self       = common.HexToAddress("0x000000000000000000000000000000000000bEEF")
)

// world in-memory stand-in for the token + protocol state the fakes share
type world struct {
	balance   *uint256.Int // self's underlying balance
	allowance *uint256.Int // router's allowance from self
	supplied  *uint256.Int
	failOn    string
}

func newWorld(balance uint64) *world {
	return &world{
		balance:   uint256.NewInt(balance),
		allowance: uint256.NewInt(0),
		supplied:  uint256.NewInt(0),
	}
}

type fakeRouter struct{ w *world }

func (f *fakeRouter) Supply(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	if f.w.failOn == "supply" {
		return errors.New("market paused")
	}
	if f.w.allowance.Lt(amount) {
		return core.ErrInsufficientAllowance
	}
	f.w.allowance.Sub(f.w.allowance, amount)
	f.w.balance.Sub(f.w.balance, amount)
	f.w.supplied.Add(f.w.supplied, amount)
	return nil
}

func (f *fakeRouter) Withdraw(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	if f.w.failOn == "withdraw" {
		return errors.New("insufficient liquidity")
	}
	if f.w.supplied.Lt(amount) {
		return core.ErrInsufficientBalance
	}
	f.w.supplied.Sub(f.w.supplied, amount)
	f.w.balance.Add(f.w.balance, amount)
	return nil
}

func (f *fakeRouter) Borrow(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	if f.w.failOn == "borrow" {
		return errors.New("insufficient collateral")
	}
	f.w.balance.Add(f.w.balance, amount)
	return nil
}

func (f *fakeRouter) Repay(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	if f.w.failOn == "repay" {
		return errors.New("nothing to repay")
	}
	if f.w.allowance.Lt(amount) {
		return core.ErrInsufficientAllowance
	}
	f.w.allowance.Sub(f.w.allowance, amount)
	f.w.balance.Sub(f.w.balance, amount)
	return nil
}

func (f *fakeRouter) ClaimRewards(ctx context.Context, poolTokens []common.Address) (*uint256.Int, error) {
	return uint256.NewInt(0), nil
}

type fakeERC20 struct{ w *world }

func (f *fakeERC20) Approve(ctx context.Context, token, spender common.Address, amount *uint256.Int) error {
	f.w.allowance = new(uint256.Int).Set(amount)
	return nil
}

func (f *fakeERC20) Allowance(ctx context.Context, token, owner, spender common.Address) (*uint256.Int, error) {
	return new(uint256.Int).Set(f.w.allowance), nil
}

func (f *fakeERC20) BalanceOf(ctx context.Context, token, account common.Address) (*uint256.Int, error) {
	return new(uint256.Int).Set(f.w.balance), nil
}

type fakeWrapper struct {
	w       *world
	wrapped int
}

func (f *fakeWrapper) Wrap(ctx context.Context, amount *uint256.Int) error {
	f.wrapped++
	return nil
}

func (f *fakeWrapper) Unwrap(ctx context.Context, amount *uint256.Int) error {
	f.wrapped--
	return nil
}

type memOperationStore struct {
	ops []*core.Operation
}

func (s *memOperationStore) Create(ctx context.Context, op *core.Operation) error {
	op.ID = uint64(len(s.ops) + 1)
	s.ops = append(s.ops, op)
	return nil
}

func (s *memOperationStore) Update(ctx context.Context, op *core.Operation) error {
	return nil
}

func (s *memOperationStore) Find(ctx context.Context, traceID string) (*core.Operation, error) {
	for _, op := range s.ops {
		if op.TraceID == traceID {
			return op, nil
		}
	}
	return nil, nil
}

func (s *memOperationStore) List(ctx context.Context, from uint64, limit int) ([]*core.Operation, error) {
	return s.ops, nil
}

func newService(w *world) (core.IPortfolioService, *fakeWrapper, *memOperationStore) {
	wrapper := &fakeWrapper{w: w}
	ops := &memOperationStore{}
	srv := New(&fakeRouter{w: w}, &fakeERC20{w: w}, wrapper, ops, routerAddr, self)
	return srv, wrapper, ops
}

func market(wrapped bool) *core.Market {
	return &core.Market{Symbol: "WBTC", Decimals: 8, Wrapped: wrapped}
}

func TestSupplyWithdrawRoundTrip(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	srv, _, _ := newService(w)

	amount := uint256.NewInt(100_000_000)

	op, err := srv.Supply(ctx, market(false), amount)
	require.NoError(t, err)
	require.Equal(t, core.OperationStatusDone, op.Status)
	require.Equal(t, "9900000000", w.balance.Dec())

	op, err = srv.Withdraw(ctx, market(false), amount)
	require.NoError(t, err)
	require.Equal(t, core.OperationStatusDone, op.Status)

	// absent interest accrual the caller's balance is back where it began
	require.Equal(t, "10000000000", w.balance.Dec())
	require.True(t, w.supplied.IsZero())
}

func TestSupplyFailureResetsAllowance(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	w.failOn = "supply"
	srv, _, ops := newService(w)

	op, err := srv.Supply(ctx, market(false), uint256.NewInt(100_000_000))
	require.Error(t, err)
	require.Equal(t, core.OperationStatusCompensated, op.Status)
	require.Equal(t, "supply", op.FailedAt)

	// the compensation revoked the approval granted in the first step
	require.True(t, w.allowance.IsZero())
	require.Len(t, ops.ops, 1)
}

func TestSupplyWrappedMarket(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	srv, wrapper, _ := newService(w)

	_, err := srv.Supply(ctx, market(true), uint256.NewInt(100_000_000))
	require.NoError(t, err)
	require.Equal(t, 1, wrapper.wrapped)
}

func TestSupplyWrappedFailureUnwinds(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	w.failOn = "supply"
	srv, wrapper, _ := newService(w)

	_, err := srv.Supply(ctx, market(true), uint256.NewInt(100_000_000))
	require.Error(t, err)

	// wrap compensated by unwrap, allowance revoked
	require.Equal(t, 0, wrapper.wrapped)
	require.True(t, w.allowance.IsZero())
}

func TestWithdrawWrappedUnwraps(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	srv, wrapper, _ := newService(w)

	amount := uint256.NewInt(100_000_000)
	_, err := srv.Supply(ctx, market(true), amount)
	require.NoError(t, err)

	_, err = srv.Withdraw(ctx, market(true), amount)
	require.NoError(t, err)
	require.Equal(t, 0, wrapper.wrapped)
}

func TestZeroAmountRejected(t *testing.T) {
	ctx := context.Background()
	srv, _, _ := newService(newWorld(1))

	_, err := srv.Supply(ctx, market(false), uint256.NewInt(0))
	require.ErrorIs(t, err, core.ErrInvalidAmount)

	_, err = srv.Borrow(ctx, market(false), nil)
	require.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestRepayApprovesFirst(t *testing.T) {
	ctx := context.Background()
	w := newWorld(10_000_000_000)
	srv, _, _ := newService(w)

	_, err := srv.Repay(ctx, market(false), uint256.NewInt(100_000_000))
	require.NoError(t, err)
	require.Equal(t, "9900000000", w.balance.Dec())
}
