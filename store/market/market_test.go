package market

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"morpho/core"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	registry, err := New([]core.MarketConfig{
		{
			Symbol:     "wbtc",
			Underlying: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
			PoolToken:  "0xccF4429DB6322D5C611ee964527D42E5d685DD6a",
			Decimals:   8,
		},
		{
			Symbol:     "WETH",
			Underlying: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
			PoolToken:  "0x4Ddc2D193948926D02f9B1fE9e1daa0718270ED5",
			Decimals:   18,
			Wrapped:    true,
		},
	})
	require.NoError(t, err)

	m, err := registry.Find(ctx, "WBTC")
	require.NoError(t, err)
	require.Equal(t, "WBTC", m.Symbol)
	require.Equal(t, uint8(8), m.Decimals)

	m, err = registry.FindByPoolToken(ctx, common.HexToAddress("0x4Ddc2D193948926D02f9B1fE9e1daa0718270ED5"))
	require.NoError(t, err)
	require.True(t, m.Wrapped)

	_, err = registry.Find(ctx, "DOGE")
	require.ErrorIs(t, err, core.ErrMarketNotFound)

	all, err := registry.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestRegistryRejectsBadConfig(t *testing.T) {
	_, err := New([]core.MarketConfig{
		{Symbol: "WBTC", Underlying: "nope", PoolToken: "0xccF4429DB6322D5C611ee964527D42E5d685DD6a"},
	})
	require.Error(t, err)

	_, err = New([]core.MarketConfig{
		{Symbol: "WBTC", Underlying: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", PoolToken: "0xccF4429DB6322D5C611ee964527D42E5d685DD6a"},
		{Symbol: "wbtc", Underlying: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", PoolToken: "0xccF4429DB6322D5C611ee964527D42E5d685DD6a"},
	})
	require.Error(t, err)
}
