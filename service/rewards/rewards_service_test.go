package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"morpho/core"
)

type fakeRewardsLens struct {
	unclaimed *uint256.Int
	seen      []common.Address
}

func (f *fakeRewardsLens) Unclaimed(ctx context.Context, account common.Address, poolTokens []common.Address) (*uint256.Int, error) {
	f.seen = poolTokens
	return f.unclaimed, nil
}

type fakeClaimRouter struct {
	claimed *uint256.Int
	err     error
}

func (f *fakeClaimRouter) Supply(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	return nil
}

func (f *fakeClaimRouter) Withdraw(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	return nil
}

func (f *fakeClaimRouter) Borrow(ctx context.Context, market *core.Market, amount *uint256.Int) error {
	return nil
}

func (f *fakeClaimRouter) Repay(ctx context.Context, market *core.Market, onBehalf common.Address, amount *uint256.Int) error {
	return nil
}

func (f *fakeClaimRouter) ClaimRewards(ctx context.Context, poolTokens []common.Address) (*uint256.Int, error) {
	return f.claimed, f.err
}

type memOperationStore struct {
	ops []*core.Operation
}

func (s *memOperationStore) Create(ctx context.Context, op *core.Operation) error {
	s.ops = append(s.ops, op)
	return nil
}

func (s *memOperationStore) Update(ctx context.Context, op *core.Operation) error { return nil }

func (s *memOperationStore) Find(ctx context.Context, traceID string) (*core.Operation, error) {
	return nil, nil
}

func (s *memOperationStore) List(ctx context.Context, from uint64, limit int) ([]*core.Operation, error) {
	return s.ops, nil
}

func markets() []*core.Market {
	return []*core.Market{
		{Symbol: "WBTC", PoolToken: common.HexToAddress("0x01")},
		{Symbol: "DAI", PoolToken: common.HexToAddress("0x02")},
	}
}

func TestUnclaimed(t *testing.T) {
	lens := &fakeRewardsLens{unclaimed: uint256.NewInt(42)}
	srv := New(lens, &fakeClaimRouter{}, &memOperationStore{}, common.Address{})

	got, err := srv.Unclaimed(context.Background(), common.Address{}, markets())
	require.NoError(t, err)
	require.Equal(t, uint64(42), got.Uint64())
	require.Len(t, lens.seen, 2)
}

func TestClaim(t *testing.T) {
	srv := New(&fakeRewardsLens{}, &fakeClaimRouter{claimed: uint256.NewInt(42)}, &memOperationStore{}, common.Address{})

	op, err := srv.Claim(context.Background(), markets())
	require.NoError(t, err)
	require.Equal(t, core.OperationStatusDone, op.Status)
	require.Equal(t, "42", op.Amount)
}

func TestClaimFailure(t *testing.T) {
	srv := New(&fakeRewardsLens{}, &fakeClaimRouter{err: errors.New("revert")}, &memOperationStore{}, common.Address{})

	op, err := srv.Claim(context.Background(), markets())
	require.Error(t, err)
	require.Equal(t, core.OperationStatusCompensated, op.Status)
}
