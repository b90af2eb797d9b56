package position

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"morpho/core"
)

type fakeLens struct {
	supply *core.Position
	borrow *core.Position
	rate   *uint256.Int
	hf     *uint256.Int
}

func (f *fakeLens) SupplyBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return f.supply, nil
}

func (f *fakeLens) BorrowBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return f.borrow, nil
}

func (f *fakeLens) AverageSupplyRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) AverageBorrowRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) UserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) UserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) NextUserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) NextUserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return f.rate, nil
}

func (f *fakeLens) HealthFactor(ctx context.Context, account common.Address) (*uint256.Int, error) {
	return f.hf, nil
}

type fakePriceOracle struct {
	price *uint256.Int
}

func (f *fakePriceOracle) Price(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return f.price, nil
}

func u(t *testing.T, v string) *uint256.Int {
	t.Helper()
	r, err := uint256.FromDecimal(v)
	require.NoError(t, err)
	return r
}

func wbtcMarket() *core.Market {
	return &core.Market{
		Symbol:   "WBTC",
		Decimals: 8,
	}
}

func TestSupplyBalanceUSD(t *testing.T) {
	ctx := context.Background()

	lens := &fakeLens{
		supply: &core.Position{
			OnPool: u(t, "10000000000"), // 100 WBTC
			P2P:    u(t, "5000000000"),  // 50 WBTC
		},
	}
	oracle := &fakePriceOracle{price: u(t, "300000000000000000000000000000000")} // 30,000e28

	srv := New(lens, oracle, core.BackendCompound, 2_103_840)

	usd, err := srv.SupplyBalanceUSD(ctx, wbtcMarket(), common.Address{})
	require.NoError(t, err)
	require.Equal(t, "3000000000000000000000000", usd.OnPool.Dec())
	require.Equal(t, "1500000000000000000000000", usd.P2P.Dec())
}

func TestSupplyBalanceUSDAave(t *testing.T) {
	ctx := context.Background()

	lens := &fakeLens{
		supply: &core.Position{
			OnPool: u(t, "10000000000"),
			P2P:    uint256.NewInt(0),
		},
	}
	oracle := &fakePriceOracle{price: u(t, "30000000000000000000000")} // 30,000e18

	srv := New(lens, oracle, core.BackendAave, 2_103_840)

	usd, err := srv.SupplyBalanceUSD(ctx, wbtcMarket(), common.Address{})
	require.NoError(t, err)
	require.Equal(t, "3000000000000000000000000", usd.OnPool.Dec())
	require.True(t, usd.P2P.IsZero())
}

func TestAverageSupplyAPR(t *testing.T) {
	lens := &fakeLens{rate: uint256.NewInt(1e10)}
	srv := New(lens, &fakePriceOracle{}, core.BackendCompound, 2_103_840)

	apr, err := srv.AverageSupplyAPR(context.Background(), wbtcMarket())
	require.NoError(t, err)
	require.Equal(t, "21038400000000000", apr.Dec())
}

func TestExpectedSupplyInterest(t *testing.T) {
	ctx := context.Background()
	lens := &fakeLens{
		supply: &core.Position{
			OnPool: u(t, "100000000000"), // 1000 WBTC on pool
			P2P:    uint256.NewInt(0),
		},
		rate: uint256.NewInt(1e10),
	}
	srv := New(lens, &fakePriceOracle{}, core.BackendCompound, 2_103_840)

	got, err := srv.ExpectedSupplyInterest(ctx, wbtcMarket(), common.Address{}, 100)
	require.NoError(t, err)
	require.Equal(t, "100000", got.Dec())

	got, err = srv.ExpectedSupplyInterest(ctx, wbtcMarket(), common.Address{}, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestIsApproxLiquidatable(t *testing.T) {
	threshold := u(t, "1050000000000000000") // 1.05 wad

	cases := []struct {
		name string
		hf   string
		want bool
	}{
		{"below", "1000000000000000000", true},
		{"at threshold", "1050000000000000000", true},
		{"just above", "1050000000000000001", false},
		{"healthy", "2000000000000000000", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lens := &fakeLens{hf: u(t, c.hf)}
			srv := New(lens, &fakePriceOracle{}, core.BackendCompound, 2_103_840)

			got, err := srv.IsApproxLiquidatable(context.Background(), common.Address{}, threshold)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}
